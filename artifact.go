package brandkit

import (
	"errors"
	"fmt"
)

// Kind classifies an artifact.
type Kind uint8

// Artifact kinds.
const (
	KindIcon Kind = iota
	KindSquareIcon
	KindVectorIcon
	KindBanner
	KindHeaderBanner
	KindScreenshot
)

// String returns a short lower-case name for k.
func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindSquareIcon:
		return "square-icon"
	case KindVectorIcon:
		return "vector-icon"
	case KindBanner:
		return "banner"
	case KindHeaderBanner:
		return "header-banner"
	case KindScreenshot:
		return "screenshot"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Artifact is one output file and the outcome of producing it.
type Artifact struct {
	Path string
	Kind Kind
	Err  error
}

// OK reports whether the artifact was written.
func (a Artifact) OK() bool {
	return a.Err == nil
}

// Report aggregates the artifacts of a run in generation order.
type Report struct {
	Logo      LogoResult
	Artifacts []Artifact
}

// Add appends artifacts to the report.
func (r *Report) Add(a ...Artifact) {
	r.Artifacts = append(r.Artifacts, a...)
}

// Succeeded returns the artifacts that were written.
func (r *Report) Succeeded() []Artifact {
	var out []Artifact
	for _, a := range r.Artifacts {
		if a.OK() {
			out = append(out, a)
		}
	}
	return out
}

// Failed returns the artifacts that could not be written.
func (r *Report) Failed() []Artifact {
	var out []Artifact
	for _, a := range r.Artifacts {
		if !a.OK() {
			out = append(out, a)
		}
	}
	return out
}

// Err joins the errors of all failed artifacts, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, a := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", a.Path, a.Err))
	}
	return errors.Join(errs...)
}
