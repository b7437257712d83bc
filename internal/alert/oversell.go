// Package alert records oversell events (deductions clamped at zero by the
// stock engine) in Redis and mails a daily summary to the shop owner.
// Overselling is a business event, not an engine error; the engine clamps
// and this package makes the event visible.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/camila-fonseca/aroma-atelier/internal/redissvc"
	"github.com/camila-fonseca/aroma-atelier/internal/stock"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")  // sender email
	alertTo          = os.Getenv("ALERT_TO")    // receiver email
	smtpServer       = os.Getenv("SMTP_SERVER") // smtp.example.com
	smtpPort         = os.Getenv("SMTP_PORT")   // e.g., 587
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

type OversellLogEntry struct {
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Requested float64   `json:"requested"`
	Available float64   `json:"available"`
	SaleID    string    `json:"sale_id"`
	Time      time.Time `json:"time"`
}

const DailyOversellLogKey = "stock:oversell:daily"

// LogOversell appends the clamp events of a finalized sale to the daily log.
func LogOversell(saleID string, clamps []stock.ClampEvent) {
	if rdb == nil {
		return
	}
	for _, c := range clamps {
		entry := OversellLogEntry{
			ItemID:    c.InventoryItemID,
			ItemName:  c.ItemName,
			Requested: c.Requested,
			Available: c.Available,
			SaleID:    saleID,
			Time:      time.Now(),
		}
		data, _ := json.Marshal(entry)
		_ = rdb.RPush(ctx, DailyOversellLogKey, data).Err()
	}
}

// StartDailyOversellSummary mails the accumulated oversell log shortly
// before midnight, every day.
func StartDailyOversellSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyOversellSummary()
	}
}

func SendDailyOversellSummary() {
	entries, err := rdb.LRange(ctx, DailyOversellLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyOversellLogKey).Err() // clear after reading

	var logs []OversellLogEntry
	itemCounts := make(map[string]int)
	for _, item := range entries {
		var entry OversellLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			itemCounts[entry.ItemName]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Oversell Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total oversold deductions: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Item</h3><ul>")
	for name, count := range itemCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b>: requested %g, had %g (sale %s) at %s</li>",
			entry.ItemName, entry.Requested, entry.Available, entry.SaleID, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")
	subject := "Daily Oversell Report"

	msg := strings.Join([]string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)

	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send oversell summary: %v\n", err)
		} else {
			log.Println("Daily oversell summary sent via SMTP.")
		}
	}()
}
