// Package language provides natural-language-specific normalisation of
// tokenised ATG text, plus the lexeme/morphology schema hooks a witness
// pipeline (pkg/witness) can attach to a language.
package language

import (
	"fmt"
	"sync"

	"github.com/curatorsigma/critic/pkg/normalize"
)

// Language is a natural language with an associated lexeme and
// morphological tagging system, able to turn an
// AnchoredNormalisedText into display/compare forms (spec.md §4.9). It
// satisfies normalize.Language.
type Language interface {
	normalize.Language
	// Lex is a human-readable identifier for this language's lexeme
	// schema, used only for documentation/diagnostics; the actual
	// per-word lex/morph annotation is left to a lex file's human
	// editor (spec.md Non-goals).
	Lex() string
}

// Registry maps language names to Language implementations.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]Language
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{languages: make(map[string]Language)}
}

// Register adds l under l.Name(), replacing any language previously
// registered under that name.
func (r *Registry) Register(l Language) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages[l.Name()] = l
}

// Lookup returns the language registered under name.
func (r *Registry) Lookup(name string) (Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.languages[name]
	if !ok {
		return nil, &UnknownError{Name: name}
	}
	return l, nil
}

// Names returns the names of all registered languages.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	return names
}

// UnknownError is returned by Lookup for an unregistered language name.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("language: no language registered under name %q", e.Name)
}
