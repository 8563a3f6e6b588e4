package bundle

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"golang.org/x/text/language"
)

// Provider locates and constructs resource bundles within a single scope.
// It is immutable after creation, making it safe for concurrent use; every
// call returns a freshly constructed bundle owned entirely by the caller.
type Provider struct {
	scope   Scope
	decoder Decoder
	mangle  NameMangler
	log     *slog.Logger
	formats []Format
}

// Option configures the Provider during construction.
type Option func(*Provider) error

// New creates a new Provider over the given scope. By default both formats
// are attempted in compiled-then-textual order with DefaultMangler; a
// provider whose format list includes FormatTextual must be given a decoder.
func New(scope Scope, opts ...Option) (*Provider, error) {
	if scope == nil {
		return nil, ErrNilScope
	}

	p := &Provider{
		scope:   scope,
		formats: []Format{FormatCompiled, FormatTextual},
		mangle:  DefaultMangler,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if p.decoder == nil && slices.Contains(p.formats, FormatTextual) {
		return nil, ErrNoDecoder
	}

	return p, nil
}

// WithFormats sets the ordered list of formats the Provider attempts. Every
// entry must be one of the two recognized formats; an empty list is allowed
// and yields a provider that never finds anything.
func WithFormats(formats ...Format) Option {
	return func(p *Provider) error {
		for _, f := range formats {
			if !f.recognized() {
				return fmt.Errorf("%w: %q", ErrInvalidFormat, f)
			}
		}
		p.formats = append([]Format{}, formats...)
		return nil
	}
}

// WithNameMangler replaces the hook mapping (base name, locale) to a bundle
// name.
func WithNameMangler(m NameMangler) Option {
	return func(p *Provider) error {
		if m == nil {
			return ErrNilMangler
		}
		p.mangle = m
		return nil
	}
}

// WithDecoder sets the decoder used by the textual format.
func WithDecoder(d Decoder) Option {
	return func(p *Provider) error {
		p.decoder = d
		return nil
	}
}

// WithLogger sets the logger for debug-level load diagnostics. Logging is
// discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(p *Provider) error {
		if log != nil {
			p.log = log
		}
		return nil
	}
}

// Formats returns the configured format order.
func (p *Provider) Formats() []Format {
	return slices.Clone(p.formats)
}

// Load returns a bundle for the given base name and locale, or (nil, nil)
// when no configured format yields one — a normal outcome, not an error.
// The first format in configured order that yields a bundle wins. An I/O or
// decode failure on the textual path wraps ErrDecode and surfaces
// immediately without falling through to remaining formats.
func (p *Provider) Load(baseName string, tag language.Tag) (Bundle, error) {
	if baseName == "" {
		return nil, ErrEmptyBaseName
	}

	name := p.mangle(baseName, tag)

	for _, format := range p.formats {
		var (
			b   Bundle
			err error
		)
		switch format {
		case FormatCompiled:
			b, err = p.loadCompiled(name)
		case FormatTextual:
			b, err = p.loadTextual(name)
		}
		if err != nil {
			return nil, err
		}
		if b != nil {
			p.log.Debug("bundle resolved",
				slog.String("name", name),
				slog.String("format", string(format)))
			return b, nil
		}
	}

	return nil, nil
}
