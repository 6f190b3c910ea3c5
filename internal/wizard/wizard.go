// Package wizard is the merge request wizard as a finite-state machine. It
// knows nothing about terminals: input arrives as Input values and the
// presentation layer reads state back through accessors.
package wizard

import (
	"multimr/internal/config"
	"multimr/internal/model"
)

// Outcome is the result of a finished wizard.
type Outcome struct {
	Completed    bool
	Request      model.MergeRequest
	Repositories []model.Repository // selected, in discovery order
}

// Wizard owns the per-screen steps. Config and the repository list are
// shared and never modified.
type Wizard struct {
	cfg    config.Config
	labels []string
	repos  []model.Repository

	repoStep     *RepoStep
	describeStep *DescribeStep
	reviewerStep *ReviewerStep
	current      step

	done    bool
	outcome Outcome
}

// New starts a wizard on the repository selection screen.
func New(cfg config.Config, repos []model.Repository) *Wizard {
	labels := cfg.LabelNames()
	w := &Wizard{
		cfg:          cfg,
		labels:       labels,
		repos:        repos,
		repoStep:     &RepoStep{Selection: NewSelection(len(repos))},
		describeStep: &DescribeStep{labels: len(labels)},
		reviewerStep: &ReviewerStep{Selection: NewSelection(len(cfg.Reviewers))},
	}
	w.current = w.repoStep
	return w
}

// Handle applies one input. Input after the wizard is done is ignored.
func (w *Wizard) Handle(in Input) {
	if w.done {
		return
	}
	if in.Key == KeyCancel {
		w.finish(false)
		return
	}

	switch w.current.handle(in) {
	case forward:
		w.goTo(w.current.screen() + 1)
	case back:
		w.goTo(w.current.screen() - 1)
	case quit:
		w.finish(false)
	case confirm:
		w.finish(true)
	}
}

func (w *Wizard) goTo(s Screen) {
	switch s {
	case RepoSelection:
		w.current = w.repoStep
	case Describe:
		w.current = w.describeStep
	case ReviewerSelection:
		w.current = w.reviewerStep
	case Finalize:
		w.current = finalizeStep{}
	}
}

func (w *Wizard) finish(completed bool) {
	w.done = true
	w.outcome = Outcome{Completed: completed}
	if completed {
		w.outcome.Request, w.outcome.Repositories = w.Summary()
	}
}

func (w *Wizard) Screen() Screen { return w.current.screen() }
func (w *Wizard) Done() bool     { return w.done }

// Outcome is meaningful once Done reports true.
func (w *Wizard) Outcome() Outcome { return w.outcome }

// Summary resolves the current selections into the request that confirming
// would produce, along with the selected repositories.
func (w *Wizard) Summary() (model.MergeRequest, []model.Repository) {
	req := model.MergeRequest{
		Title:       w.describeStep.Title(),
		Description: w.describeStep.Description(),
		Reviewers:   []string{},
		Labels:      []string{},
		Assignee:    w.cfg.Assignee,
	}
	for _, i := range w.reviewerStep.Chosen() {
		req.Reviewers = append(req.Reviewers, w.cfg.Reviewers[i])
	}
	if len(w.labels) > 0 {
		req.Labels = append(req.Labels, w.labels[w.describeStep.Label()])
	}

	repos := make([]model.Repository, 0, w.repoStep.Count())
	for _, i := range w.repoStep.Chosen() {
		repos = append(repos, w.repos[i])
	}
	return req, repos
}

func (w *Wizard) Config() config.Config            { return w.cfg }
func (w *Wizard) Labels() []string                 { return w.labels }
func (w *Wizard) Repositories() []model.Repository { return w.repos }
func (w *Wizard) RepoStep() *RepoStep              { return w.repoStep }
func (w *Wizard) DescribeStep() *DescribeStep      { return w.describeStep }
func (w *Wizard) ReviewerStep() *ReviewerStep      { return w.reviewerStep }
