// Package models provides the data structures used throughout the application.
package models

import "strings"

// Category is a label of the closed classification taxonomy.
type Category string

// Taxonomy members, in declaration order. The order is significant: the keyword
// strategy breaks score ties in favour of the earlier member.
const (
	CategoryProcessual     Category = "Processual"
	CategoryFinanceiro     Category = "Financeiro"
	CategorySuporte        Category = "Suporte Técnico"
	CategoryComercial      Category = "Comercial"
	CategoryAdministrativo Category = "Administrativo"
	CategoryOutros         Category = "Outros"
)

// DefaultCategory is assigned to anything that cannot be classified.
const DefaultCategory = CategoryOutros

var taxonomy = []Category{
	CategoryProcessual,
	CategoryFinanceiro,
	CategorySuporte,
	CategoryComercial,
	CategoryAdministrativo,
	CategoryOutros,
}

var categoryDescriptions = map[Category]string{
	CategoryProcessual:     "Processos judiciais, prazos, audiências, decisões, recursos, liminares, andamento processual",
	CategoryFinanceiro:     "Pagamentos, custas processuais, honorários, cobranças, faturas, reembolsos, fluxo de caixa",
	CategorySuporte:        "Problemas técnicos, acesso ao sistema, erros, bugs, autenticação, performance, indisponibilidade",
	CategoryComercial:      "Novos negócios, propostas comerciais, parcerias, prospecção de clientes, contratos, licitações",
	CategoryAdministrativo: "Agendamentos, solicitação de documentos, logística, organização de recursos, secretaria",
	CategoryOutros:         "Mensagens genéricas, saudações ou que não se encaixam nas categorias acima",
}

// Categories returns the taxonomy in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// CategoryNames returns the taxonomy labels as plain strings, in declaration order.
func CategoryNames() []string {
	names := make([]string, len(taxonomy))
	for i, c := range taxonomy {
		names[i] = string(c)
	}
	return names
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Description returns the human readable scope of the category.
func (c Category) Description() string {
	return categoryDescriptions[c]
}

// IsValid reports whether c is exactly a member of the taxonomy.
func (c Category) IsValid() bool {
	return c.Index() >= 0
}

// Index returns the declaration position of c, or -1 when c is not a member.
func (c Category) Index() int {
	for i, member := range taxonomy {
		if member == c {
			return i
		}
	}
	return -1
}

// ParseCategory matches label against the taxonomy, ignoring case and
// surrounding whitespace. No other normalization is applied.
func ParseCategory(label string) (Category, bool) {
	trimmed := strings.TrimSpace(label)
	for _, member := range taxonomy {
		if strings.EqualFold(trimmed, string(member)) {
			return member, true
		}
	}
	return "", false
}

// CoerceCategory returns the taxonomy member matching label, or DefaultCategory.
// Labels coming from untrusted generators must go through this function.
func CoerceCategory(label string) Category {
	if c, ok := ParseCategory(label); ok {
		return c
	}
	return DefaultCategory
}
