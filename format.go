package xpyun

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const receiptSeparator = "----------------------"

// Order is the structured data a receipt is rendered from. Money values
// are exact decimals; Total overrides the computed item sum when set.
type Order struct {
	Title   string // defaults to 订单详情
	OrderNo string
	Time    string
	TableNo string
	Items   []OrderItem
	Total   decimal.Decimal // payable amount, zero means sum of items
	Remark  string
	Footer  string // defaults to 谢谢惠顾，欢迎下次光临！
}

// OrderItem is a single line on a receipt.
type OrderItem struct {
	Name   string
	Qty    int
	Price  decimal.Decimal
	Amount decimal.Decimal // zero means Qty × Price
}

// amount returns the line total, deriving it from quantity and unit
// price when not set explicitly.
func (i OrderItem) amount() decimal.Decimal {
	if !i.Amount.IsZero() {
		return i.Amount
	}
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Label is the structured data a product label is rendered from. Extra
// fields are printed after the known ones, in slice order.
type Label struct {
	ProductName    string // defaults to 商品
	Barcode        string
	Price          decimal.Decimal // omitted from the label when zero
	Spec           string
	ProductionDate string
	ExpiryDate     string
	Extra          []LabelField
}

// LabelField is a custom key/value line on a label.
type LabelField struct {
	Key   string
	Value string
}

// FormatReceipt renders an order as printable receipt text. The result
// depends only on the order: formatting the same order twice yields
// identical text.
func FormatReceipt(order *Order) string {
	title := order.Title
	if title == "" {
		title = "订单详情"
	}
	footer := order.Footer
	if footer == "" {
		footer = "谢谢惠顾，欢迎下次光临！"
	}

	lines := []string{
		fmt.Sprintf("**%s**", title),
		receiptSeparator,
		fmt.Sprintf("订单号: %s", order.OrderNo),
		fmt.Sprintf("时间: %s", order.Time),
		fmt.Sprintf("桌号: %s", order.TableNo),
		"",
		"**商品清单**",
		receiptSeparator,
	}

	totalQty := 0
	totalAmount := decimal.Zero
	for _, item := range order.Items {
		amount := item.amount()
		lines = append(lines, fmt.Sprintf("%s x%d  %s", item.Name, item.Qty, amount.StringFixed(2)))
		totalQty += item.Qty
		totalAmount = totalAmount.Add(amount)
	}

	payable := order.Total
	if payable.IsZero() {
		payable = totalAmount
	}

	lines = append(lines,
		receiptSeparator,
		fmt.Sprintf("合计: %d件  ￥%s", totalQty, totalAmount.StringFixed(2)),
		fmt.Sprintf("应付: ￥%s", payable.StringFixed(2)),
	)

	if order.Remark != "" {
		lines = append(lines, "", fmt.Sprintf("备注: %s", order.Remark))
	}

	lines = append(lines, "", footer)

	return strings.Join(lines, "\n")
}

// FormatLabel renders label data as printable label text. Like
// FormatReceipt, the output is a pure function of its input.
func FormatLabel(label *Label) string {
	name := label.ProductName
	if name == "" {
		name = "商品"
	}

	lines := []string{
		fmt.Sprintf("**%s**", name),
		"",
	}

	if label.Barcode != "" {
		lines = append(lines, fmt.Sprintf("条码: %s", label.Barcode))
	}
	if !label.Price.IsZero() {
		lines = append(lines, fmt.Sprintf("价格: ￥%s", label.Price.StringFixed(2)))
	}
	if label.Spec != "" {
		lines = append(lines, fmt.Sprintf("规格: %s", label.Spec))
	}
	if label.ProductionDate != "" {
		lines = append(lines, fmt.Sprintf("生产日期: %s", label.ProductionDate))
	}
	if label.ExpiryDate != "" {
		lines = append(lines, fmt.Sprintf("保质期: %s", label.ExpiryDate))
	}
	for _, field := range label.Extra {
		lines = append(lines, fmt.Sprintf("%s: %s", field.Key, field.Value))
	}

	return strings.Join(lines, "\n")
}

// FormatDuration renders a second count as human-readable Chinese text,
// matching the units the platform uses in its console.
func FormatDuration(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d秒", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d分%d秒", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%d小时%d分", seconds/3600, (seconds%3600)/60)
	}
}
