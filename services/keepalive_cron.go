package services

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// StartKeepAliveCron pings the service's own /health endpoint every 10
// minutes so free-tier hosting does not spin the instance down between
// requests.
func StartKeepAliveCron() {
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		log.Println("[KEEPALIVE] APP_BASE_URL not set, keep-alive disabled")
		return
	}

	client := &http.Client{Timeout: 15 * time.Second}
	ping := func() {
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			log.Printf("[KEEPALIVE] ping failed: %v", err)
			return
		}
		resp.Body.Close()
	}

	c := cron.New()
	c.AddFunc("@every 10m", ping)
	c.Start()
	log.Println("[KEEPALIVE] pinging", baseURL+"/health", "every 10m")
}
