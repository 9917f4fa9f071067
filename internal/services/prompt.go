package services

import (
	"fmt"
	"strings"

	"github.com/paclead/paclead-backend/internal/types"
)

// DefaultAssistantProfile is used whenever a tenant has not configured a
// profile. The values mirror the documented defaults: a friendly-professional
// consultative persona answering in Brazilian Portuguese.
func DefaultAssistantProfile() types.AssistantProfile {
	return types.AssistantProfile{
		Name:            "Vendedora Virtual",
		Personality:     "Amigável, profissional e prestativa",
		Tone:            "Amigável e profissional",
		SalesApproach:   "Consultiva, focando nas necessidades do cliente",
		GreetingMessage: "Olá! Como posso ajudá-lo hoje?",
		Language:        "pt-br",
	}
}

// NoProductsSentence replaces the product list when the snapshot is empty.
const NoProductsSentence = "Não há produtos cadastrados no momento."

// RenderProductList renders one line per product in snapshot order:
//
//	- {name}: {description} | Price: {price 2dp} | Stock: {stock} units
func RenderProductList(snapshot []*types.Product) string {
	if len(snapshot) == 0 {
		return NoProductsSentence
	}
	var b strings.Builder
	for _, p := range snapshot {
		fmt.Fprintf(&b, "- %s: %s | Price: %s | Stock: %d units\n",
			p.Name, p.Description, p.Price.StringFixed(2), p.Stock)
	}
	return b.String()
}

// BuildSystemPrompt is pure and deterministic: the same profile and snapshot
// always produce a byte-identical prompt. It never fails.
func BuildSystemPrompt(profile types.AssistantProfile, snapshot []*types.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Você é %s, uma vendedora virtual especializada em ajudar clientes.\n\n", profile.Name)
	fmt.Fprintf(&b, "PERSONALIDADE: %s\n\n", profile.Personality)
	fmt.Fprintf(&b, "TOM DE VOZ: %s\n\n", profile.Tone)
	fmt.Fprintf(&b, "ABORDAGEM DE VENDAS: %s\n\n", profile.SalesApproach)
	fmt.Fprintf(&b, "MENSAGEM DE SAUDAÇÃO: %s\n\n", profile.GreetingMessage)

	b.WriteString("PRODUTOS DISPONÍVEIS:\n")
	b.WriteString(RenderProductList(snapshot))
	b.WriteString("\n")

	b.WriteString(`INSTRUÇÕES:
1. Sempre seja educada e prestativa
2. Conheça bem os produtos e suas características
3. Faça perguntas para entender as necessidades do cliente
4. Sugira produtos adequados baseado no que o cliente busca
5. Informe preços e disponibilidade quando relevante
6. Mantenha o foco em ajudar o cliente a encontrar o que precisa
7. Se não souber algo sobre um produto, seja honesta
8. Sempre termine oferecendo mais ajuda
`)

	language := profile.Language
	if language == "" {
		language = "pt-br"
	}
	fmt.Fprintf(&b, "\nResponda sempre no idioma %s de forma natural e conversacional.\n", language)

	return b.String()
}
