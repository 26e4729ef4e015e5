package classifier

import (
	"fmt"
	"strings"

	"fjacquet/nexus-classifier/internal/models"
)

type fewShotExample struct {
	input     string
	category  models.Category
	reasoning string
}

var fewShotExamples = []fewShotExample{
	{"Qual o prazo para recurso de apelação neste processo?", models.CategoryProcessual, "Questão sobre prazo e recurso processual"},
	{"Preciso de uma cópia do processo, pode encaminhar por email?", models.CategoryAdministrativo, "Solicitação de documento e logística de entrega"},
	{"A tela está congelada, não consigo fazer login no sistema", models.CategorySuporte, "Problema técnico de acesso ao sistema"},
	{"Gostaria de receber uma proposta para novos casos de direito trabalhista", models.CategoryComercial, "Interesse em novo negócio/contrato"},
	{"Qual é o valor das custas processuais deste caso?", models.CategoryFinanceiro, "Questão sobre valores e custas processuais"},
}

// BuildSystemPrompt renders the system prompt sent to the completion service.
// It lists every taxonomy member with its description, a handful of worked
// examples and the exact JSON shape expected back.
func BuildSystemPrompt() string {
	var b strings.Builder

	b.WriteString("Você é um classificador jurídico especializado do sistema Nexus. ")
	b.WriteString("Sua tarefa é analisar a mensagem do usuário e classificá-la em exatamente uma das categorias abaixo, ")
	b.WriteString("com base no contexto e na intenção, não apenas em palavras isoladas.\n\n")

	b.WriteString("CATEGORIAS:\n")
	for i, c := range models.Categories() {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c, c.Description())
	}

	b.WriteString("\nEXEMPLOS:\n")
	for _, ex := range fewShotExamples {
		fmt.Fprintf(&b, "- Entrada: %q\n  Saída: {\"category\": %q, \"reasoning\": %q}\n", ex.input, ex.category, ex.reasoning)
	}

	b.WriteString("\nINSTRUÇÕES:\n")
	b.WriteString("- Classifique pela intenção principal do usuário, mesmo que a mensagem contenha palavras de várias categorias.\n")
	b.WriteString("- Responda SOMENTE com um objeto JSON com as chaves \"category\" (nome exato da categoria) e \"reasoning\" (uma frase curta).\n")
	fmt.Fprintf(&b, "- Categorias disponíveis: %s\n", strings.Join(models.CategoryNames(), ", "))

	return b.String()
}
