package xpyun

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// VoiceType selects the announcement voice configured on the printer.
type VoiceType int

const (
	VoiceMandarinFemale  VoiceType = 0
	VoiceMandarinMale    VoiceType = 1
	VoiceCantoneseFemale VoiceType = 2
	VoiceEnglishFemale   VoiceType = 3
	VoiceCantoneseMale   VoiceType = 4
	VoiceEnglishMale     VoiceType = 5
)

// PayType identifies the payment channel announced with an amount.
type PayType int

const (
	PayOther  PayType = 0
	PayCash   PayType = 1
	PayCard   PayType = 2
	PayQRCode PayType = 3
)

// String returns the announcement key fragment for the payment channel.
func (p PayType) String() string {
	switch p {
	case PayCash:
		return "CASH"
	case PayCard:
		return "CARD"
	case PayQRCode:
		return "QR_CODE"
	default:
		return "OTHER"
	}
}

// Announcement keys understood by the platform.
const (
	AnnounceNewOrder   = "NEW_ORDER"
	AnnounceOrderDone  = "COMPLETE_ORDER"
	AnnounceError      = "ERROR"
	AnnounceNoPaper    = "NO_PAPER"
	AnnounceLowBattery = "LOW_BATTERY"
)

// SetVoiceType configures the announcement voice on the printer and
// switches announcements on or off.
func (c *Client) SetVoiceType(ctx context.Context, sn string, voiceType VoiceType, enabled bool) error {
	if sn == "" {
		return fmt.Errorf("sn is required")
	}

	voice := 0
	if enabled {
		voice = 1
	}

	params := map[string]any{
		"sn":        sn,
		"voiceType": int(voiceType),
		"voice":     voice,
	}
	if err := c.call(ctx, "setVoiceType", params, nil); err != nil {
		return fmt.Errorf("setting voice type: %w", err)
	}

	return nil
}

// DisableVoice turns off all announcements on the printer.
func (c *Client) DisableVoice(ctx context.Context, sn string) error {
	return c.SetVoiceType(ctx, sn, VoiceMandarinFemale, false)
}

// PlayVoice triggers an announcement on the printer. The announcement
// argument is one of the Announce keys or a vendor-defined key.
func (c *Client) PlayVoice(ctx context.Context, sn, announcement string) error {
	if sn == "" || announcement == "" {
		return fmt.Errorf("sn and announcement are required")
	}

	params := map[string]any{
		"sn":        sn,
		"voiceType": announcement,
	}
	if err := c.call(ctx, "playVoice", params, nil); err != nil {
		return fmt.Errorf("playing voice: %w", err)
	}

	return nil
}

// PlayPayment announces a received payment: the amount, rendered with
// two decimals, and the payment channel.
func (c *Client) PlayPayment(ctx context.Context, sn string, amount decimal.Decimal, pay PayType) error {
	if sn == "" {
		return fmt.Errorf("sn is required")
	}

	params := map[string]any{
		"sn":        sn,
		"voiceType": "AMOUNT_" + pay.String(),
		"payType":   int(pay),
		"money":     amount.StringFixed(2),
	}
	if err := c.call(ctx, "playVoice", params, nil); err != nil {
		return fmt.Errorf("playing payment voice: %w", err)
	}

	return nil
}

// PrintAndAnnounce prints a receipt and, when an amount is given,
// follows it with a payment announcement. The announcement is best
// effort: a voice failure does not undo the print and is reported
// alongside the order ID.
func (c *Client) PrintAndAnnounce(ctx context.Context, job *ReceiptJob, amount *decimal.Decimal, pay PayType) (string, error) {
	orderID, err := c.PrintReceipt(ctx, job)
	if err != nil {
		return "", err
	}

	if job.Voice && amount != nil {
		if err := c.PlayPayment(ctx, job.SN, *amount, pay); err != nil {
			return orderID, fmt.Errorf("printed as order %s but announcing payment failed: %w", orderID, err)
		}
	}

	return orderID, nil
}
