package services

import (
	"errors"
	"fmt"
)

// Category identifiers for the four fixed service types.
const (
	CategoryCercaEletrica = "CERCA_ELETRICA"
	CategoryCFTV          = "CFTV"
	CategoryAlarme        = "ALARME"
	CategoryConcertina    = "CONCERTINA"
)

// ErrUnknownCategory is returned by GetTemplate for a category that has no
// entry in the catalog. Only reachable through a programming defect; the UI
// never offers categories outside the catalog.
var ErrUnknownCategory = errors.New("unknown service category")

// ServiceTemplate is the static seed data for one service category. Templates
// are process-wide read-only reference data; selecting a category copies the
// item prototypes into fresh LineItems, so a session never mutates a template.
type ServiceTemplate struct {
	Category    string
	Title       string
	Items       []LineItem
	FooterNotes []string

	// ShowTotal controls whether the quote renders a grand-total bar.
	// nil means "not set" and defaults to true.
	ShowTotal *bool
}

// ShowTotalValue resolves the optional flag to its effective value.
func (t ServiceTemplate) ShowTotalValue() bool {
	return t.ShowTotal == nil || *t.ShowTotal
}

// CategoryOption describes one card on the category picker screen.
type CategoryOption struct {
	Category    string
	Label       string
	Description string
}

// CategoryOptions returns the picker cards in display order.
func CategoryOptions() []CategoryOption {
	return []CategoryOption{
		{CategoryCercaEletrica, "Cerca Elétrica", "Proteção perimetral ostensiva com eletrificação pulsativa."},
		{CategoryCFTV, "Câmeras (CFTV)", "Sistemas de monitoramento, gravação e acesso remoto."},
		{CategoryAlarme, "Sistema de Alarme", "Sensores de presença, abertura e centrais monitoradas."},
		{CategoryConcertina, "Concertina", "Barreira física cortante de alta resistência para muros."},
	}
}

// GetTemplate looks up the template for a category.
func GetTemplate(category string) (ServiceTemplate, error) {
	tpl, ok := serviceTemplates[category]
	if !ok {
		return ServiceTemplate{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return tpl, nil
}

func boolPtr(b bool) *bool { return &b }

// serviceTemplates is the built-in catalog. Item names, prices, quantities
// and footer notes are business content and must match the reference data.
var serviceTemplates = map[string]ServiceTemplate{
	CategoryCercaEletrica: {
		Category: CategoryCercaEletrica,
		Title:    "Cerca Elétrica",
		Items: []LineItem{
			{Name: "HASTES DE 4 ISOLADORES FERRO", Price: 19.50, Quantity: 28},
			{Name: "ARAME AÇO INOX DE 60MM", Price: 90.00, Quantity: 1},
			{Name: "CABO ALTA ISOLAÇÃO", Price: 1.40, Quantity: 20},
			{Name: "CABO DOIS PARES", Price: 1.20, Quantity: 10},
			{Name: "SIRENE", Price: 30.00, Quantity: 2},
			{Name: "CENTRAL DE CHOQUE INTELBRAS WIFI", Price: 539.00, Quantity: 1},
			{Name: "BATERIA", Price: 109.00, Quantity: 1},
			{Name: "BARRA DE ATERRAMENTO", Price: 49.00, Quantity: 1},
			{Name: "PLACAS DE ADVERTÊNCIA", Price: 4.00, Quantity: 4},
			{Name: "MÃO DE OBRA", Price: 600.00, Quantity: 1},
		},
		FooterNotes: []string{
			"Hastes em todo muro a cada 2.5m e onde o muro possui degrau utilizamos uma ao lado da outra;",
			"Central Intelbras com controle remoto.",
			"Valor a vista, dividimos no cartão até 6x com acréscimo de 4.99%;",
			"Garantia de 1 ano.",
		},
	},
	CategoryCFTV: {
		Category: CategoryCFTV,
		Title:    "CFTV com câmeras Intelbras HD",
		Items: []LineItem{
			{Name: "DVR DE 4 CANAIS INTELBRAS QUALIDADE HD", Price: 539.00, Quantity: 1},
			{Name: "CÂMERAS INTELBRAS INFRA 1120 QUALIDADE HD", Price: 179.00, Quantity: 4},
			{Name: "HD DE 1TB, HD 24/7 (próprio para DVR)", Price: 499.00, Quantity: 1},
			{Name: "FONTE DE 12V 5A", Price: 99.00, Quantity: 1},
			{Name: "CONECTORES BNC", Price: 4.50, Quantity: 8},
			{Name: "CONECTORES P4", Price: 4.50, Quantity: 5},
			{Name: "CABO CONDUTTI 80% MALHA", Price: 1.40, Quantity: 200},
			{Name: "CAIXAS DE PROTEÇÃO", Price: 9.90, Quantity: 4},
			{Name: "ACESSO REMOTO CORTESIA", Price: 0.00, Quantity: 1},
			{Name: "MÃO DE OBRA", Price: 400.00, Quantity: 1},
		},
		FooterNotes: []string{
			"APP INTELBRAS NOS CELULARES",
			"NO CARTÃO ATÉ 6 VEZES COM ACRÉSCIMO DE 4.99%",
			"COBRIMOS QUALQUER ORÇAMENTO DA MESMA MARCA",
			"TODOS OS PRODUTOS SÃO INTELBRAS E COM GARANTIA DE UM ANO.",
			"O HD TEM GARANTIA DE 3 ANOS.",
		},
	},
	CategoryAlarme: {
		Category: CategoryAlarme,
		Title:    "Alarme Intelbras",
		Items: []LineItem{
			{Name: "CENTRAL ANM 24NET INTELBRAS", Price: 439.00, Quantity: 1},
			{Name: "SIRENE", Price: 30.00, Quantity: 1},
			{Name: "CABO DE REDE (CORTESIA)", Price: 0.00, Quantity: 1},
			{Name: "BATERIA", Price: 119.00, Quantity: 1},
			{Name: "CABO LAN ALARME", Price: 1.20, Quantity: 10},
			{Name: "SENSOR DE PORTA E JANELA INTELBRAS", Price: 69.90, Quantity: 5},
			{Name: "CONTROLE REMOTO", Price: 35.00, Quantity: 2},
			{Name: "MÃO DE OBRA", Price: 300.00, Quantity: 1},
		},
		FooterNotes: []string{
			"Produtos intelbras",
			"Garantia de um ano e sem mensalidade",
			"Acesso via Aplicativo",
			"Não disca, toca o celular se tiver conectado a internet.",
			"Arma e desarma por controle remoto ou app exclusivo Intelbras",
			"Dividimos no cartão até 6x com acréscimo de 4.99%",
		},
	},
	CategoryConcertina: {
		Category:  CategoryConcertina,
		Title:     "Concertina",
		ShowTotal: boolPtr(false),
		Items: []LineItem{
			{Name: "CONCERTINA (À VISTA)", Price: 30.00, Quantity: 39.6, Unit: "m"},
			{Name: "CONCERTINA (NO CARTÃO)", Price: 34.00, Quantity: 0, Unit: "m"},
		},
		FooterNotes: []string{
			"Instalação Inclusa",
			"Material Galvanizado",
		},
	},
}
