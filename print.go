package xpyun

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	maxReceiptCopies = 10
	maxLabelQuantity = 100

	defaultLabelWidth = 30 // millimetres
)

// ReceiptJob describes a receipt print submission.
type ReceiptJob struct {
	SN         string // printer serial number
	Content    string // printable text, see FormatReceipt
	Copies     int    // 1-10, defaults to 1
	UpdateCode string // replaces the content of a previously queued job
	ForcePrint bool   // print even when the platform would hold the job
	Voice      bool   // announce the job on the device
}

// LabelJob describes a label print submission. Dimensions and margins are
// in millimetres.
type LabelJob struct {
	SN         string
	Content    string
	Height     int
	Width      int // defaults to 30
	Quantity   int // 1-100, defaults to 1
	TopMargin  int
	LeftMargin int
	UpdateCode string
}

// PrintTask is any job BatchPrint can submit. ReceiptJob, LabelJob and
// OrderJob implement it.
type PrintTask interface {
	submit(ctx context.Context, c *Client) (string, error)
}

// OrderJob prints a structured order as a formatted receipt.
type OrderJob struct {
	SN     string
	Order  *Order
	Copies int // 1-10, defaults to 1
	Voice  bool
}

// BatchResult records the outcome of one task in a batch. Exactly one
// result is produced per submitted task, in input order.
type BatchResult struct {
	TaskID  string // generated identifier, unique per submission
	Index   int    // position of the task in the input slice
	OrderID string // platform order ID, set on success
	Err     error  // nil on success
}

// PrintReceipt submits a receipt job and returns the platform order ID.
func (c *Client) PrintReceipt(ctx context.Context, job *ReceiptJob) (string, error) {
	if job.SN == "" || job.Content == "" {
		return "", fmt.Errorf("sn and content are required")
	}

	copies := job.Copies
	if copies == 0 {
		copies = 1
	}
	if copies < 1 || copies > maxReceiptCopies {
		return "", fmt.Errorf("copies must be between 1 and %d, got %d", maxReceiptCopies, job.Copies)
	}

	mode := 0
	if job.ForcePrint {
		mode = 1
	}
	voice := 0
	if job.Voice {
		voice = 1
	}

	params := map[string]any{
		"sn":      job.SN,
		"content": job.Content,
		"times":   copies,
		"mode":    mode,
		"voice":   voice,
	}
	if job.UpdateCode != "" {
		params["code_u"] = job.UpdateCode
	}

	var orderID string
	if err := c.call(ctx, "print", params, &orderID); err != nil {
		return "", fmt.Errorf("printing receipt: %w", err)
	}

	return orderID, nil
}

// PrintLabel submits a label job and returns the platform order ID.
func (c *Client) PrintLabel(ctx context.Context, job *LabelJob) (string, error) {
	if job.SN == "" || job.Content == "" {
		return "", fmt.Errorf("sn and content are required")
	}

	width := job.Width
	if width == 0 {
		width = defaultLabelWidth
	}
	if job.Height <= 0 || width <= 0 {
		return "", fmt.Errorf("label height and width must be positive")
	}

	quantity := job.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 || quantity > maxLabelQuantity {
		return "", fmt.Errorf("quantity must be between 1 and %d, got %d", maxLabelQuantity, job.Quantity)
	}

	params := map[string]any{
		"sn":       job.SN,
		"content":  job.Content,
		"height":   job.Height,
		"width":    width,
		"quantity": quantity,
		"top":      job.TopMargin,
		"left":     job.LeftMargin,
	}
	if job.UpdateCode != "" {
		params["code_u"] = job.UpdateCode
	}

	var orderID string
	if err := c.call(ctx, "printLabel", params, &orderID); err != nil {
		return "", fmt.Errorf("printing label: %w", err)
	}

	return orderID, nil
}

// PrintOrder formats the order as a receipt and prints it.
func (c *Client) PrintOrder(ctx context.Context, sn string, order *Order) (string, error) {
	if order == nil {
		return "", fmt.Errorf("order is required")
	}

	return c.PrintReceipt(ctx, &ReceiptJob{
		SN:      sn,
		Content: FormatReceipt(order),
	})
}

func (j *ReceiptJob) submit(ctx context.Context, c *Client) (string, error) {
	return c.PrintReceipt(ctx, j)
}

func (j *LabelJob) submit(ctx context.Context, c *Client) (string, error) {
	return c.PrintLabel(ctx, j)
}

func (j *OrderJob) submit(ctx context.Context, c *Client) (string, error) {
	if j.Order == nil {
		return "", fmt.Errorf("order is required")
	}
	return c.PrintReceipt(ctx, &ReceiptJob{
		SN:      j.SN,
		Content: FormatReceipt(j.Order),
		Copies:  j.Copies,
		Voice:   j.Voice,
	})
}

// BatchPrint submits each task independently and collects one result per
// task. Tasks are not coordinated or retried; a failed task does not stop
// the rest.
func (c *Client) BatchPrint(ctx context.Context, tasks []PrintTask) []BatchResult {
	results := make([]BatchResult, 0, len(tasks))

	for i, task := range tasks {
		result := BatchResult{
			TaskID: uuid.NewString(),
			Index:  i,
		}
		result.OrderID, result.Err = task.submit(ctx, c)
		results = append(results, result)
	}

	return results
}
