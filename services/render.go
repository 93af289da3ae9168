package services

// Fixed page geometry: one A4 sheet at 96 DPI. Export reproduces this size
// pixel-for-pixel no matter how the on-screen preview is scaled down, so
// these values are load-bearing for the whole pipeline.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
)

// Business identity rendered on every quote. Static content, not derived
// from the session.
const (
	BrandName     = "Cerca Segura"
	DocumentLabel = "ORÇAMENTO"
)

// ContactBlock is the fixed contact/address footer of the document.
type ContactBlock struct {
	AddressLine1 string
	AddressLine2 string
	CNPJ         string
	WhatsApp     string
	Landline     string
	Social       string
	CompanyName  string
}

// QuoteRow is one rendered item line: all money already formatted, quantity
// carrying its optional unit suffix. Shaded alternates by index parity for
// readability (even index = shaded).
type QuoteRow struct {
	Name      string
	UnitPrice string
	Quantity  string
	LineTotal string
	Shaded    bool
}

// TotalBar is the optional grand-total summary row.
type TotalBar struct {
	Label  string
	Amount string
}

// QuotePage is the laid-out one-page document: header band, title block,
// item table, optional total bar, footer notes and contact block, in render
// order. It is plain data so rasterizers and document writers can stay
// swappable.
type QuotePage struct {
	Brand        string
	DocLabel     string
	Title        string
	CustomerLine string // empty when no customer name was entered
	ColumnHeads  [4]string
	Rows         []QuoteRow
	Total        *TotalBar // nil when the total bar is hidden
	FooterNotes  []string
	Contact      ContactBlock
}

// defaultContact matches the printed stationery of the business.
var defaultContact = ContactBlock{
	AddressLine1: "Arlindo Pedro da Silva, 270",
	AddressLine2: "Cons. Lafaiete - MG",
	CNPJ:         "CNPJ: 14.153.404/0001-20",
	WhatsApp:     "WhatsApp: (31) 98707-1654",
	Landline:     "Fixo: (31) 3939-1654",
	Social:       "@cercaseguracl",
	CompanyName:  "Cerca Segura-Sistemas de Segurança",
}

// BuildQuotePage maps a session to its page layout. Pure: same session in,
// same page out; the grand total is derived from the items on every call.
func BuildQuotePage(s Session) *QuotePage {
	page := &QuotePage{
		Brand:       BrandName,
		DocLabel:    DocumentLabel,
		Title:       s.ServiceTitle,
		ColumnHeads: [4]string{"Produto", "Preço", "QT", "Total"},
		FooterNotes: append([]string(nil), s.FooterNotes...),
		Contact:     defaultContact,
	}

	if s.CustomerName != "" {
		page.CustomerLine = "Cliente: " + s.CustomerName
	}

	page.Rows = make([]QuoteRow, len(s.Items))
	for i, it := range s.Items {
		page.Rows[i] = QuoteRow{
			Name:      it.Name,
			UnitPrice: FormatBRL(it.Price),
			Quantity:  FormatQty(it.Quantity, it.Unit),
			LineTotal: FormatBRL(it.Price * it.Quantity),
			Shaded:    i%2 == 0,
		}
	}

	if s.ShowTotal {
		page.Total = &TotalBar{
			Label:  "Valor Total",
			Amount: FormatBRL(s.Total()),
		}
	}

	return page
}
