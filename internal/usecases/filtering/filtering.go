// Package filtering aplica filtros combinados por AND sobre coleções,
// preservando a ordem original dos itens
package filtering

import (
	"strings"
	"time"

	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

type Predicate[T any] func(item T) bool

// Apply retorna um novo slice com os itens que satisfazem todos os predicados
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			result = append(result, item)
		}
	}
	return result
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Text adapta um campo obrigatório para uso em Contains
func Text[T any](get func(item T) string) func(item T) *string {
	return func(item T) *string {
		v := get(item)
		return &v
	}
}

// Contains busca o termo, sem diferenciar maiúsculas, em qualquer um dos campos.
// Campos opcionais ausentes retornam nil e nunca casam. Termo vazio aceita tudo;
// espaços fazem parte do termo e não são aparados.
func Contains[T any](term string, fields ...func(item T) *string) Predicate[T] {
	needle := strings.ToLower(term)
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields {
			if v := f(item); v != nil && strings.Contains(strings.ToLower(*v), needle) {
				return true
			}
		}
		return false
	}
}

// IsAll indica se o valor do filtro desativa a comparação
func IsAll(value string) bool {
	return value == "" || value == domain.FilterAll
}

// Equals compara um campo enum com o valor do filtro. "" e "all" aceitam tudo.
func Equals[T any, E ~string](value string, get func(item T) E) Predicate[T] {
	if IsAll(value) {
		return nil
	}
	return func(item T) bool {
		return string(get(item)) == value
	}
}

// Since aceita itens com data igual ou posterior a cutoff; cutoff zero aceita tudo
func Since[T any](cutoff time.Time, get func(item T) time.Time) Predicate[T] {
	if cutoff.IsZero() {
		return nil
	}
	return func(item T) bool {
		return !get(item).Before(cutoff)
	}
}
