package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006"

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) RenderQuote(ctx context.Context, doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Quote", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(15,
		col.New(6).Add(
			text.New("Quote number: "+doc.Number, props.Text{Top: 0}),
			text.New("Date of issue: "+doc.IssuedAt.Format(dateLayout), props.Text{Top: 4}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Customer", props.Text{Style: fontstyle.Bold}),
			text.New(doc.Customer.Name, props.Text{Top: 5}),
			text.New(doc.Customer.Address, props.Text{Top: 9}),
			text.New(doc.Customer.PostalCode, props.Text{Top: 13}),
			text.New(doc.Customer.Email, props.Text{Top: 17}),
			text.New(doc.Customer.Phone, props.Text{Top: 21}),
		),
		col.New(6),
	)

	m.AddRow(10,
		text.NewCol(1, "#", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Product", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for i, item := range doc.Items {
		name := item.ProductName
		if item.Missing {
			name = MissingVariantLabel
		}
		m.AddRow(10,
			text.NewCol(1, fmt.Sprintf("%d", i+1), props.Text{Size: 9}),
			text.NewCol(5, name, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(item.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, formatAmount(doc.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	if !doc.Discount.IsZero() {
		m.AddRow(10,
			col.New(8),
			text.NewCol(2, "Discount", props.Text{Size: 9}),
			text.NewCol(2, "-"+formatAmount(doc.Discount), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatAmount(doc.Total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if doc.SignedRef != nil {
		signedLine := "Signed, reference " + *doc.SignedRef
		if doc.SignedDate != nil {
			signedLine += " on " + doc.SignedDate.Format(dateLayout)
		}
		m.AddRow(12,
			text.NewCol(12, signedLine, props.Text{Size: 8, Top: 4}),
		)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return generated.GetBytes(), nil
}

func formatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}
