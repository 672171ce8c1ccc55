package prompt

import "fmt"

const (
	defaultConfirmLabel = "Confirm"
	defaultAbortLabel   = "Cancel"
)

// Request describes a single prompt/response cycle. It lives only until the
// prompt is resolved.
type Request struct {
	Kind         Kind
	Heading      string
	Description  string // may contain {i} placeholders filled from Values
	Values       []any
	ConfirmLabel string
	AbortLabel   string

	// OnConfirm runs after the modal closes when the user confirms. Nil means
	// nothing to do.
	OnConfirm func()
	// OnAbort runs after the modal closes when the user aborts. It does not
	// run on a silent dismiss.
	OnAbort func()
}

// NewWarning builds a request from the built-in template for kind. values are
// interpolated into the description and must match the count the template
// expects.
func NewWarning(kind Kind, values ...any) (Request, error) {
	w, err := kind.template()
	if err != nil {
		return Request{}, err
	}

	if len(values) != w.args {
		return Request{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrMissingArguments, kind, w.args, len(values))
	}

	return Request{
		Kind:         kind,
		Heading:      headingPrefix + w.heading,
		Description:  w.description,
		Values:       values,
		ConfirmLabel: w.confirmLabel,
		AbortLabel:   w.abortLabel,
	}, nil
}

// View is the rendered text of a request, as shown on a Surface.
type View struct {
	Heading      string `json:"heading"`
	Description  string `json:"description"`
	ConfirmLabel string `json:"confirm_label"`
	AbortLabel   string `json:"abort_label"`
}

// View interpolates the description and fills in default button labels.
func (r Request) View() View {
	v := View{
		Heading:      r.Heading,
		Description:  Format(r.Description, r.Values...),
		ConfirmLabel: r.ConfirmLabel,
		AbortLabel:   r.AbortLabel,
	}
	if v.ConfirmLabel == "" {
		v.ConfirmLabel = defaultConfirmLabel
	}
	if v.AbortLabel == "" {
		v.AbortLabel = defaultAbortLabel
	}
	return v
}
