package printer

import (
	"fmt"
	"strings"

	"tillroll/internal/domain"
)

// ReceiptKind selects one of the three fixed receipt layouts.
type ReceiptKind string

const (
	KindKitchen  ReceiptKind = "kitchen"
	KindDelivery ReceiptKind = "delivery"
	KindCustomer ReceiptKind = "customer"
)

func (k ReceiptKind) IsValid() bool {
	switch k {
	case KindKitchen, KindDelivery, KindCustomer:
		return true
	}
	return false
}

func (k ReceiptKind) title() string {
	switch k {
	case KindKitchen:
		return "Kitchen Receipt"
	case KindDelivery:
		return "Delivery Receipt"
	default:
		return "Customer Receipt"
	}
}

// receiptWidth is the character width of one line on 58mm paper. Fixed, not
// configurable: the layouts are structural contracts and the output must be
// bit-identical across devices.
const receiptWidth = 32

// dateLayout is locale-fixed (en-GB) for the same reason.
const dateLayout = "02/01/2006, 15:04:05"

var (
	plain = Style{}
	bold  = Style{Bold: true}
)

// Renderer produces the ordered instruction sequence for a receipt. The
// three kinds share the header/footer/pricing structure but expose different
// order data; the inclusion rules are business rules, not formatting
// choices:
//
//	                        kitchen  delivery  customer
//	per-item modifiers      yes      yes       no
//	per-item prep note      yes      no        no
//	order-level note        no       yes       yes
//	customer address        yes      yes       no
//	pricing breakdown       yes      yes       yes
//	QR of order number      no       no        yes
type Renderer struct {
	restaurantName    string
	restaurantAddress string
}

func NewRenderer(restaurantName, restaurantAddress string) *Renderer {
	return &Renderer{
		restaurantName:    restaurantName,
		restaurantAddress: restaurantAddress,
	}
}

func (r *Renderer) Render(order *domain.Order, kind ReceiptKind) ([]Instruction, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown receipt kind %q", kind)
	}

	var out []Instruction
	add := func(in Instruction) { out = append(out, in) }

	// Header: centered, emphasized restaurant banner and receipt title.
	add(textLine(AlignCenter, SizeDouble, bold, r.restaurantName))
	if r.restaurantAddress != "" {
		add(textLine(AlignCenter, SizeNormal, plain, r.restaurantAddress))
	}
	add(textLine(AlignCenter, SizeNormal, plain, ""))
	add(textLine(AlignCenter, SizeNormal, bold, kind.title()))
	add(textLine(AlignCenter, SizeNormal, plain, ""))

	// Order info.
	add(textLine(AlignLeft, SizeNormal, plain, padLine("Order", order.OrderNumber)))
	add(textLine(AlignLeft, SizeNormal, plain, padLine("Date", order.CreatedAt.Format(dateLayout))))
	add(separator())

	// Customer block. The kitchen needs the delivery context too; the
	// customer copy carries no address.
	add(textLine(AlignLeft, SizeNormal, plain, "Customer"))
	add(textLine(AlignLeft, SizeNormal, plain, padLine("Name", order.Customer.Name)))
	if kind != KindCustomer && order.Customer.Address != "" {
		add(textLine(AlignLeft, SizeNormal, plain, padLine("Address", order.Customer.Address)))
	}
	add(separator())

	// Items: "{name} x{qty}" left, line total right-aligned. Modifier and
	// note lines are indented continuations of their parent item.
	for _, item := range order.Items {
		label := fmt.Sprintf("%s x%d", item.Name, item.Quantity)
		add(textLine(AlignLeft, SizeNormal, plain, padLine(label, money(item.LineTotal()))))

		if kind != KindCustomer {
			for _, mod := range item.Modifiers {
				add(textLine(AlignLeft, SizeNormal, plain, "  "+mod))
			}
		}
		if kind == KindKitchen && item.Note != "" {
			add(textLine(AlignLeft, SizeNormal, plain, "  (note: "+item.Note+")"))
		}
	}
	add(separator())

	// Pricing block: amounts right-aligned against left-aligned labels,
	// total emphasized.
	add(textLine(AlignLeft, SizeNormal, plain, padLine("Subtotal", money(order.TotalAmount()))))
	add(textLine(AlignLeft, SizeNormal, plain, padLine("Tax", money(order.Tax))))
	if order.Discount > 0 {
		add(textLine(AlignLeft, SizeNormal, plain, padLine("Discount", "-"+money(order.Discount))))
	}
	add(textLine(AlignLeft, SizeNormal, bold, padLine("Total", money(order.TotalDue()))))
	add(separator())

	// The order-level special instruction goes to the courier and the
	// customer, never to the kitchen.
	if kind != KindKitchen && order.Note != "" {
		add(textLine(AlignLeft, SizeNormal, plain, "Order note: "+order.Note))
		add(separator())
	}

	// Footer.
	add(textLine(AlignCenter, SizeNormal, plain, ""))
	add(textLine(AlignCenter, SizeNormal, plain, "Thank you for Ordering See"))
	add(textLine(AlignCenter, SizeNormal, plain, "you again Online!"))

	if kind == KindCustomer {
		add(qr("ORDER:" + order.OrderNumber))
	}

	return out, nil
}

func separator() Instruction {
	return textLine(AlignLeft, SizeNormal, plain, strings.Repeat("-", receiptWidth))
}

// padLine right-aligns value against a left-aligned label on one fixed-width
// line, keeping at least one space between them when the content overflows.
func padLine(label, value string) string {
	gap := receiptWidth - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

// money formats an amount with two decimals and no symbol; currency display
// is locale-fixed so output is identical across devices.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
