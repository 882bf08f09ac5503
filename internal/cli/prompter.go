package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/autowatch/internal/domain"
)

// Prompter asks the operator for the token, subjects and units with huh forms.
// It satisfies credential.Prompter and service.Selector.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool

	runForm func(ctx context.Context, f *huh.Form) error
}

// NewPrompter reads from in and draws on out. accessible switches huh to
// plain line prompts, used when stdin is not a terminal.
func NewPrompter(in io.Reader, out io.Writer, accessible bool) *Prompter {
	p := &Prompter{in: in, out: out, accessible: accessible}
	p.runForm = p.run
	return p
}

func (p *Prompter) run(ctx context.Context, f *huh.Form) error {
	return f.
		WithAccessible(p.accessible).
		WithKeyMap(promptKeyMap()).
		WithInput(p.in).
		WithOutput(p.out).
		RunWithContext(ctx)
}

func (p *Prompter) PromptToken(ctx context.Context) (string, error) {
	var token string
	if err := p.runForm(ctx, wizardInputToken(&token)); err != nil {
		return "", err
	}
	return token, nil
}

// SelectSubjects returns the picked subjects in identity order.
func (p *Prompter) SelectSubjects(ctx context.Context, subjects []domain.Subject) ([]domain.Subject, error) {
	if len(subjects) == 0 {
		return nil, nil
	}
	var ids []string
	if err := p.runForm(ctx, wizardSelectSubjects(subjects, &ids)); err != nil {
		return nil, err
	}
	return pickSubjects(subjects, ids), nil
}

// SelectUnits returns the picked unit indices in outline order.
func (p *Prompter) SelectUnits(ctx context.Context, subject domain.Subject, units []domain.Unit) ([]int, error) {
	if len(units) == 0 {
		return nil, nil
	}
	var picked []int
	if err := p.runForm(ctx, wizardSelectUnits(subject, units, &picked)); err != nil {
		return nil, err
	}
	return sortedIndices(picked, len(units)), nil
}

func pickSubjects(all []domain.Subject, ids []string) []domain.Subject {
	chosen := make(map[string]bool, len(ids))
	for _, id := range ids {
		chosen[id] = true
	}
	var out []domain.Subject
	for _, s := range all {
		if chosen[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func sortedIndices(picked []int, n int) []int {
	chosen := make([]bool, n)
	for _, i := range picked {
		if i >= 0 && i < n {
			chosen[i] = true
		}
	}
	var out []int
	for i, ok := range chosen {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
