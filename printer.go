package xpyun

import (
	"context"
	"fmt"
)

// Printer identifies a printer registered with the platform. SN is the
// vendor-assigned serial number that addresses the device in every call.
type Printer struct {
	SN   string `json:"sn"`
	Name string `json:"name"`
	Card string `json:"card,omitempty"` // identification code, optional
}

// AddPrintersResult lists which serial numbers the platform accepted and
// which it rejected.
type AddPrintersResult struct {
	Success []string `json:"success"`
	Fail    []string `json:"fail"`
}

// PrinterStatus describes the live state of a printer.
type PrinterStatus struct {
	SN          string `json:"sn"`
	Connected   bool   `json:"connected"`
	HasPaper    bool   `json:"hasPaper"`
	Temperature int    `json:"temperature"`
	Voltage     int    `json:"voltage"`
	QueueLength int    `json:"queueLength"`
	LastUpdate  string `json:"lastUpdateTime"`
}

// AddPrinters registers printers with the account. Every printer must
// carry a serial number and a name.
func (c *Client) AddPrinters(ctx context.Context, printers []Printer) (*AddPrintersResult, error) {
	if len(printers) == 0 {
		return nil, fmt.Errorf("at least one printer is required")
	}
	for i, p := range printers {
		if p.SN == "" || p.Name == "" {
			return nil, fmt.Errorf("printer %d: sn and name are required", i)
		}
	}

	var result AddPrintersResult
	if err := c.call(ctx, "addPrinters", map[string]any{"items": printers}, &result); err != nil {
		return nil, fmt.Errorf("adding printers: %w", err)
	}

	return &result, nil
}

// AddPrinter registers a single printer.
func (c *Client) AddPrinter(ctx context.Context, printer Printer) error {
	result, err := c.AddPrinters(ctx, []Printer{printer})
	if err != nil {
		return err
	}
	if len(result.Fail) > 0 {
		return fmt.Errorf("adding printer %s: rejected by platform", result.Fail[0])
	}
	return nil
}

// DeletePrinters removes printers from the account.
func (c *Client) DeletePrinters(ctx context.Context, sns []string) error {
	if len(sns) == 0 {
		return fmt.Errorf("at least one serial number is required")
	}

	if err := c.call(ctx, "delPrinters", map[string]any{"snlist": sns}, nil); err != nil {
		return fmt.Errorf("deleting printers: %w", err)
	}

	return nil
}

// DeletePrinter removes a single printer.
func (c *Client) DeletePrinter(ctx context.Context, sn string) error {
	return c.DeletePrinters(ctx, []string{sn})
}

// UpdatePrinter renames a printer.
func (c *Client) UpdatePrinter(ctx context.Context, sn, name string) error {
	if sn == "" || name == "" {
		return fmt.Errorf("sn and name are required")
	}

	if err := c.call(ctx, "updPrinter", map[string]any{"sn": sn, "name": name}, nil); err != nil {
		return fmt.Errorf("updating printer: %w", err)
	}

	return nil
}

// ClearQueue discards all jobs waiting on the printer.
func (c *Client) ClearQueue(ctx context.Context, sn string) error {
	if sn == "" {
		return fmt.Errorf("sn is required")
	}

	if err := c.call(ctx, "delPrinterQueue", map[string]any{"sn": sn}, nil); err != nil {
		return fmt.Errorf("clearing printer queue: %w", err)
	}

	return nil
}

// GetPrinterStatus retrieves the live state of a single printer.
func (c *Client) GetPrinterStatus(ctx context.Context, sn string) (*PrinterStatus, error) {
	if sn == "" {
		return nil, fmt.Errorf("sn is required")
	}

	var status PrinterStatus
	if err := c.call(ctx, "queryPrinterStatus", map[string]any{"sn": sn}, &status); err != nil {
		return nil, fmt.Errorf("getting printer status: %w", err)
	}
	if status.SN == "" {
		status.SN = sn
	}

	return &status, nil
}

// GetPrintersStatus retrieves the live state of several printers at once,
// keyed by serial number.
func (c *Client) GetPrintersStatus(ctx context.Context, sns []string) (map[string]PrinterStatus, error) {
	if len(sns) == 0 {
		return nil, fmt.Errorf("at least one serial number is required")
	}

	statuses := make(map[string]PrinterStatus)
	if err := c.call(ctx, "queryPrintersStatus", map[string]any{"snlist": sns}, &statuses); err != nil {
		return nil, fmt.Errorf("getting printers status: %w", err)
	}
	for sn, status := range statuses {
		if status.SN == "" {
			status.SN = sn
			statuses[sn] = status
		}
	}

	return statuses, nil
}

// PrinterOnline reports whether the printer is currently connected.
func (c *Client) PrinterOnline(ctx context.Context, sn string) (bool, error) {
	status, err := c.GetPrinterStatus(ctx, sn)
	if err != nil {
		return false, err
	}
	return status.Connected, nil
}
