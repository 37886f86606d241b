// Package types contains small interfaces shared across the module packages.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// RedactPassword replaces a non-empty password with "xxxxx" in the rendered output.
	RedactPassword bool `json:"redact_password,omitempty"`
}

type ValidFlag interface {
	IsValid() bool
}

type Validatable interface {
	Validate() error
}

type Equalable interface {
	Equal(val any) bool
}
