package main

import (
	"Hoist/internal/auth"
	"Hoist/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Watches the evaluation history and pushes every new CRITICAL lift to the
// admin chat. Polling keeps the bot stateless apart from the watermark.

const pollInterval = 30 * time.Second

func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	liftRepo := repo.NewPostgresDB(db)

	since := time.Now()
	for {
		evals, err := liftRepo.ListCriticalSince(context.Background(), since)
		if err != nil {
			log.Println("ListCriticalSince error:", err)
			time.Sleep(pollInterval)
			continue
		}
		for _, ev := range evals {
			sendMessage(token, adminID, formatAlert(ev))
			if ev.CreatedAt.After(since) {
				since = ev.CreatedAt
			}
		}
		time.Sleep(pollInterval)
	}
}

func formatAlert(ev repo.Evaluation) string {
	var cfg struct {
		PayloadMassKg   float64 `json:"payload_mass_kg"`
		CraneCapacityKg float64 `json:"crane_capacity_kg"`
	}
	_ = json.Unmarshal(ev.Config, &cfg)
	return fmt.Sprintf("🚨 CRITICAL lift #%d by user %d: payload %.0f kg against %.0f kg capacity (%s)",
		ev.ID, ev.UserID, cfg.PayloadMassKg, cfg.CraneCapacityKg, ev.CreatedAt.Format(time.RFC3339))
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	b, _ := json.Marshal(payload)
	res, err := http.Post(url, "application/json", strings.NewReader(string(b)))
	if err != nil {
		log.Println("sendMessage error:", err)
		return
	}
	res.Body.Close()
}
