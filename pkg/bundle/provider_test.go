package bundle_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil scope fails", func(t *testing.T) {
		t.Parallel()
		_, err := bundle.New(nil)
		require.ErrorIs(t, err, bundle.ErrNilScope)
	})

	t.Run("default formats require a decoder", func(t *testing.T) {
		t.Parallel()
		_, err := bundle.New(&stubScope{})
		require.ErrorIs(t, err, bundle.ErrNoDecoder)
	})

	t.Run("compiled-only provider needs no decoder", func(t *testing.T) {
		t.Parallel()
		p, err := bundle.New(&stubScope{}, bundle.WithFormats(bundle.FormatCompiled))
		require.NoError(t, err)
		require.Equal(t, []bundle.Format{bundle.FormatCompiled}, p.Formats())
	})

	t.Run("any sequence over recognized formats succeeds", func(t *testing.T) {
		t.Parallel()
		sequences := [][]bundle.Format{
			{},
			{bundle.FormatCompiled},
			{bundle.FormatTextual},
			{bundle.FormatTextual, bundle.FormatCompiled},
			{bundle.FormatCompiled, bundle.FormatTextual, bundle.FormatCompiled},
		}
		for _, seq := range sequences {
			p, err := bundle.New(&stubScope{},
				bundle.WithFormats(seq...),
				bundle.WithDecoder(rawDecoder{}),
			)
			require.NoError(t, err)
			require.Equal(t, seq, p.Formats())
		}
	})

	t.Run("unrecognized format fails construction", func(t *testing.T) {
		t.Parallel()
		_, err := bundle.New(&stubScope{},
			bundle.WithFormats(bundle.FormatCompiled, bundle.Format("xml")),
		)
		require.ErrorIs(t, err, bundle.ErrInvalidFormat)
	})

	t.Run("nil mangler fails construction", func(t *testing.T) {
		t.Parallel()
		_, err := bundle.New(&stubScope{},
			bundle.WithFormats(bundle.FormatCompiled),
			bundle.WithNameMangler(nil),
		)
		require.ErrorIs(t, err, bundle.ErrNilMangler)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty base name is rejected", func(t *testing.T) {
		t.Parallel()
		p, err := bundle.New(&stubScope{}, bundle.WithFormats(bundle.FormatCompiled))
		require.NoError(t, err)

		_, err = p.Load("", language.English)
		require.ErrorIs(t, err, bundle.ErrEmptyBaseName)
	})

	t.Run("exhausted formats yield nil without error", func(t *testing.T) {
		t.Parallel()
		p, err := bundle.New(&stubScope{},
			bundle.WithDecoder(rawDecoder{}),
		)
		require.NoError(t, err)

		b, err := p.Load("messages", language.German)
		require.NoError(t, err)
		require.Nil(t, b)
	})

	t.Run("empty format list never finds anything", func(t *testing.T) {
		t.Parallel()
		sc := &stubScope{
			types: map[string]bundle.Constructor{
				"messages_en": func() (bundle.Bundle, error) {
					return bundle.NewMap(map[string]string{"k": "v"}), nil
				},
			},
		}
		p, err := bundle.New(sc, bundle.WithFormats())
		require.NoError(t, err)

		b, err := p.Load("messages", language.English)
		require.NoError(t, err)
		require.Nil(t, b)
	})

	t.Run("format order decides precedence", func(t *testing.T) {
		t.Parallel()
		sc := &stubScope{
			types: map[string]bundle.Constructor{
				"messages_en": func() (bundle.Bundle, error) {
					return bundle.NewMap(map[string]string{"source": "compiled"}), nil
				},
			},
			resources: textFS("messages_en.properties", "source=textual"),
		}

		compiledFirst, err := bundle.New(sc,
			bundle.WithFormats(bundle.FormatCompiled, bundle.FormatTextual),
			bundle.WithDecoder(rawDecoder{decode: decodeKeyValue}),
		)
		require.NoError(t, err)

		b, err := compiledFirst.Load("messages", language.English)
		require.NoError(t, err)
		requireValue(t, b, "source", "compiled")

		textualFirst, err := bundle.New(sc,
			bundle.WithFormats(bundle.FormatTextual, bundle.FormatCompiled),
			bundle.WithDecoder(rawDecoder{decode: decodeKeyValue}),
		)
		require.NoError(t, err)

		b, err = textualFirst.Load("messages", language.English)
		require.NoError(t, err)
		requireValue(t, b, "source", "textual")
	})

	t.Run("custom mangler drives the lookup name", func(t *testing.T) {
		t.Parallel()
		sc := &stubScope{
			types: map[string]bundle.Constructor{
				"messages/en": func() (bundle.Bundle, error) {
					return bundle.NewMap(map[string]string{"k": "v"}), nil
				},
			},
		}
		p, err := bundle.New(sc,
			bundle.WithFormats(bundle.FormatCompiled),
			bundle.WithNameMangler(func(base string, tag language.Tag) string {
				return base + "/" + tag.String()
			}),
		)
		require.NoError(t, err)

		b, err := p.Load("messages", language.English)
		require.NoError(t, err)
		require.NotNil(t, b)
	})

	t.Run("concurrent loads return independent instances", func(t *testing.T) {
		t.Parallel()
		sc := &stubScope{
			types: map[string]bundle.Constructor{
				"messages_en": func() (bundle.Bundle, error) {
					return bundle.NewMap(map[string]string{"greeting": "Hello"}), nil
				},
			},
		}
		p, err := bundle.New(sc, bundle.WithFormats(bundle.FormatCompiled))
		require.NoError(t, err)

		const workers = 32
		results := make([]bundle.Bundle, workers)

		var g errgroup.Group
		for i := 0; i < workers; i++ {
			i := i
			g.Go(func() error {
				b, err := p.Load("messages", language.English)
				if err != nil {
					return err
				}
				results[i] = b
				return nil
			})
		}
		require.NoError(t, g.Wait())

		seen := make(map[bundle.Bundle]bool, workers)
		for _, b := range results {
			require.NotNil(t, b)
			requireValue(t, b, "greeting", "Hello")
			require.False(t, seen[b], "instances must not be shared across calls")
			seen[b] = true
		}
	})
}

func decodeKeyValue(r io.Reader) (bundle.Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		entries[key] = value
	}
	return bundle.NewMap(entries), nil
}

func requireValue(t *testing.T, b bundle.Bundle, key, want string) {
	t.Helper()
	got, ok := b.Lookup(key)
	require.True(t, ok, "key %q missing", key)
	require.Equal(t, want, got)
}
