package classifier

import "fjacquet/nexus-classifier/internal/models"

// defaultKeywords is the built-in keyword table of the rule engine. Keywords are
// written in their natural Portuguese spelling and normalized at load time.
// Outros has no keywords: it is only reached when nothing else matches.
var defaultKeywords = map[models.Category][]string{
	models.CategoryProcessual: {
		"prazo", "juiz", "audiência", "processo", "liminar",
		"sentença", "recurso", "intimação", "vara", "autos", "dje",
		"apelação", "agravado", "agravante", "juizado", "tribunal",
		"petição", "defesa", "réu", "autor", "sentenciado",
		"moção", "mandado", "citação", "contestação", "execução",
	},
	models.CategoryFinanceiro: {
		"boleto", "pagar", "pagamento", "valor", "honorários",
		"custas", "fatura", "dinheiro", "reembolso", "nota fiscal",
		"cobrança", "débito", "crédito", "transferência", "depósito",
		"juros", "multa", "taxa", "investimento", "orçamento",
		"custo", "despesa", "receita", "lucro", "prejuízo",
	},
	models.CategorySuporte: {
		"senha", "login", "acesso", "sistema", "erro", "bug",
		"entrar", "site", "nexus", "indisponível", "offline",
		"problema técnico", "não funciona", "travado", "lento",
		"recuperar senha", "resetar", "autenticação", "permissão",
		"crash", "falha", "conexão", "servidor down", "manutenção",
	},
	models.CategoryComercial: {
		"proposta", "orçamento", "contratar", "nova causa",
		"parceria", "apresentação", "reunião comercial", "cliente novo",
		"negócio", "venda", "contrato", "acordo", "oportunidade",
		"consultoria", "projeto", "licitação", "fornecedor", "cliente",
		"prospecção", "oferta", "desconto", "cancelamento", "contratação",
	},
	models.CategoryAdministrativo: {
		"agendar", "sala", "reunião", "cópia", "digitalizar",
		"documento", "certidão", "cartório", "motoboy", "correio",
		"agendamento", "material", "logística", "secretária",
		"arquivos", "impressão", "scaneamento", "protocolo", "pasta",
		"solicitação", "administrativo", "gerencial", "coordenação", "organização",
	},
}
