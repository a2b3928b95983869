// Package xpyun provides a client for the XPYUN cloud printer open platform.
//
// The XPYUN API drives networked receipt and label printers: registering
// printers by serial number, submitting print jobs, querying order and
// printer state, and triggering voice announcements on the device.
//
// Basic usage:
//
//	client := xpyun.New(user, userKey)
//
//	// Print a receipt
//	orderID, err := client.PrintReceipt(ctx, &xpyun.ReceiptJob{
//		SN:      "9100xxxxxxxx",
//		Content: xpyun.FormatReceipt(order),
//	})
//
//	// Check the printer
//	status, err := client.GetPrinterStatus(ctx, "9100xxxxxxxx")
//
// Every request is signed with the account credentials; the package
// computes the signature automatically. Vendor-reported failures are
// returned as *APIError values, with well-known codes matchable through
// errors.Is against the exported sentinel errors.
package xpyun
