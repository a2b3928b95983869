package xpyun

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dec builds a decimal from a literal; only used with valid test input.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatReceipt(t *testing.T) {
	order := &Order{
		Title:   "测试订单",
		OrderNo: "TEST001",
		Time:    "2024-01-01 12:00:00",
		TableNo: "1号桌",
		Items: []OrderItem{
			{Name: "商品A", Qty: 2, Price: dec("10.00")},
			{Name: "商品B", Qty: 1, Price: dec("15.00")},
			{Name: "商品C", Qty: 3, Price: dec("8.00")},
		},
		Remark: "少放盐",
		Footer: "谢谢惠顾！",
	}

	want := strings.Join([]string{
		"**测试订单**",
		"----------------------",
		"订单号: TEST001",
		"时间: 2024-01-01 12:00:00",
		"桌号: 1号桌",
		"",
		"**商品清单**",
		"----------------------",
		"商品A x2  20.00",
		"商品B x1  15.00",
		"商品C x3  24.00",
		"----------------------",
		"合计: 6件  ￥59.00",
		"应付: ￥59.00",
		"",
		"备注: 少放盐",
		"",
		"谢谢惠顾！",
	}, "\n")

	got := FormatReceipt(order)
	assert.Equal(t, want, got)

	// Formatting is idempotent: the same order renders identically.
	assert.Equal(t, got, FormatReceipt(order))
}

func TestFormatReceipt_defaults(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Name: "奶茶", Qty: 2, Price: dec("9.90")},
		},
	}

	got := FormatReceipt(order)

	assert.True(t, strings.HasPrefix(got, "**订单详情**\n"))
	assert.True(t, strings.HasSuffix(got, "\n谢谢惠顾，欢迎下次光临！"))
	assert.Contains(t, got, "合计: 2件  ￥19.80")
	assert.Contains(t, got, "应付: ￥19.80")
	assert.NotContains(t, got, "备注")
}

func TestFormatReceipt_explicitTotalAndAmount(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			// Explicit amount wins over qty x price.
			{Name: "套餐", Qty: 1, Price: dec("30.00"), Amount: dec("25.00")},
		},
		Total: dec("20.00"), // discounted payable
	}

	got := FormatReceipt(order)

	assert.Contains(t, got, "套餐 x1  25.00")
	assert.Contains(t, got, "合计: 1件  ￥25.00")
	assert.Contains(t, got, "应付: ￥20.00")
}

func TestFormatLabel(t *testing.T) {
	label := &Label{
		ProductName:    "测试商品",
		Barcode:        "1234567890123",
		Price:          dec("25.80"),
		Spec:           "500g/袋",
		ProductionDate: "2024-01-01",
		ExpiryDate:     "12个月",
		Extra: []LabelField{
			{Key: "批次", Value: "B-7"},
			{Key: "产地", Value: "广东"},
		},
	}

	want := strings.Join([]string{
		"**测试商品**",
		"",
		"条码: 1234567890123",
		"价格: ￥25.80",
		"规格: 500g/袋",
		"生产日期: 2024-01-01",
		"保质期: 12个月",
		"批次: B-7",
		"产地: 广东",
	}, "\n")

	got := FormatLabel(label)
	require.Equal(t, want, got)
	assert.Equal(t, got, FormatLabel(label))
}

func TestFormatLabel_omitsEmptyFields(t *testing.T) {
	got := FormatLabel(&Label{})

	assert.Equal(t, "**商品**\n", got)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0秒"},
		{59, "59秒"},
		{60, "1分0秒"},
		{125, "2分5秒"},
		{3600, "1小时0分"},
		{3725, "1小时2分"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}
