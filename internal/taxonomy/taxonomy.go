// Package taxonomy defines the category vocabularies used to classify
// transactions, and loads user overrides from YAML.
package taxonomy

// Category maps a category name to the keyword substrings that select it.
// Vocabularies are ordered slices, not maps: classification returns the first
// matching category, so iteration order is part of the contract.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Set bundles the polarity-split vocabularies. Positive values classify
// against Income, negative and zero values against Expenses.
type Set struct {
	Income   []Category `yaml:"income"`
	Expenses []Category `yaml:"expenses"`
}

// DefaultExpenses returns the built-in expense vocabulary. Alimentação comes
// first so food merchants win over the broader Mercado-style keywords below.
func DefaultExpenses() []Category {
	return []Category{
		{Name: "Alimentação", Keywords: []string{
			"mercado", "supermercado", "padaria", "panificadora", "açaí",
			"aliment", "hot dog", "culinaria", "sabor", "atacadao", "hortifruti",
		}},
		{Name: "Restaurante", Keywords: []string{
			"restaurante", "lanchonete", "burguer", "pizzaria", "bk", "mcdonald",
			"ifood", "delivery", "pizza", "hamburguer", "sanduiche", "lanche",
		}},
		{Name: "Tabacaria", Keywords: []string{
			"tabacaria", "vape", "narguile", "fumo", "cigarro", "hookah",
			"charuto", "cachimbo", "essência", "vaporizador", "tobacco",
		}},
		{Name: "Transporte", Keywords: []string{
			"uber", "99", "cabify", "onibus", "ônibus", "metrô", "metro", "trem",
			"lotação", "taxi", "rodoviária", "bilhete", "transporte", "passagem",
		}},
		{Name: "Posto", Keywords: []string{
			"posto", "gasolina", "diesel", "etanol", "combustível", "abastecimento",
			"shell", "ipiranga", "lubrificante",
		}},
		{Name: "Farmácia", Keywords: []string{
			"farmacia", "droga", "raia", "pacheco", "panvel", "medicamento",
			"remédio", "drogaria", "botica", "pague menos",
		}},
		{Name: "Saúde", Keywords: []string{
			"clinica", "hospital", "dentista", "exame", "laboratorio", "saúde",
			"psicólogo", "nutricionista", "fisioterapia", "pronto socorro", "ótica",
		}},
		{Name: "Entretenimento", Keywords: []string{
			"cinema", "netflix", "spotify", "ingresso", "show", "evento", "teatro",
			"game", "jogos", "assinatura", "streaming",
		}},
		{Name: "Vestuário", Keywords: []string{
			"roupa", "moda", "sapato", "renner", "riachuelo", "cea", "vestido",
			"camisa", "calça", "tênis", "casaco", "acessório", "bolsa",
		}},
		{Name: "Tecnologia", Keywords: []string{
			"apple", "google", "amazon", "eletronico", "celular", "notebook",
			"tablet", "computador", "smartphone", "hardware", "software",
		}},
		{Name: "Educação", Keywords: []string{
			"curso", "faculdade", "escola", "ead", "universidade", "ensino",
			"professor", "educação", "instituto", "papelaria", "livraria",
		}},
		{Name: "Transferência", Keywords: []string{
			"transferência enviada", "pix", "ted", "doc", "transfer",
		}},
	}
}

// DefaultIncome returns the built-in income vocabulary. Renda leads so the
// generic "recebido" labels on payment rows resolve there first.
func DefaultIncome() []Category {
	return []Category{
		{Name: "Renda", Keywords: []string{
			"pagamento recebido", "recebido", "recebida", "salário", "salario",
			"provento", "honorário",
		}},
		{Name: "Vendas", Keywords: []string{
			"venda", "maquininha", "cartão de crédito", "pos",
		}},
		{Name: "Reembolso", Keywords: []string{
			"reembolso", "estorno", "devolução",
		}},
		{Name: "Rendimentos", Keywords: []string{
			"rendimento", "juros", "dividendo", "fii", "resgate",
		}},
		{Name: "Transferência", Keywords: []string{
			"transferência recebida", "pix", "ted", "doc", "depósito",
		}},
	}
}

// DefaultSet returns the full built-in taxonomy.
func DefaultSet() *Set {
	return &Set{
		Income:   DefaultIncome(),
		Expenses: DefaultExpenses(),
	}
}

// ForValueSign selects the vocabulary for a transaction polarity.
func (s *Set) ForValueSign(positive bool) []Category {
	if positive {
		return s.Income
	}
	return s.Expenses
}
