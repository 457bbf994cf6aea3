package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"ordersvc/internal/entities"

	"github.com/segmentio/kafka-go"
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() entities.Order {
	return entities.Order{
		OrderUID:    randomString(16),
		TrackNumber: "TRACK" + randomString(6),
		Entry:       "WBIL",
		Delivery: entities.Delivery{
			Name:    "John Doe",
			Phone:   fmt.Sprintf("+%d", rand.Intn(9999999999)),
			Zip:     fmt.Sprintf("%06d", rand.Intn(999999)),
			City:    "City" + randomString(4),
			Address: fmt.Sprintf("Street %d", rand.Intn(100)),
			Region:  "Region" + randomString(3),
			Email:   fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		},
		Payment: entities.Payment{
			Transaction:  randomString(16),
			RequestID:    "",
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       uint32(rand.Intn(5000) + 500),
			PaymentDT:    uint32(time.Now().Unix()),
			Bank:         "bank" + randomString(4),
			DeliveryCost: uint32(rand.Intn(1000)),
			GoodsTotal:   uint32(rand.Intn(3000)),
			CustomFee:    uint32(rand.Intn(10)),
		},
		Items: []entities.Item{
			{
				ChrtID:      uint32(rand.Intn(9999999)),
				TrackNumber: "TRACK" + randomString(6),
				Price:       uint32(rand.Intn(1000) + 100),
				RID:         randomString(16),
				Name:        "Item " + randomString(5),
				Sale:        uint32(rand.Intn(50)),
				Size:        fmt.Sprintf("%d", rand.Intn(50)),
				TotalPrice:  uint32(rand.Intn(1000)),
				NmID:        uint32(rand.Intn(999999)),
				Brand:       "Brand" + randomString(3),
				Status:      uint32(200 + rand.Intn(10)),
			},
		},
		Locale:            "en",
		InternalSignature: "",
		CustomerID:        "customer_" + randomString(5),
		DeliveryService:   "service" + randomString(4),
		SharedKey:         fmt.Sprintf("%d", rand.Intn(10)),
		SmID:              uint32(rand.Intn(999)),
		DateCreated:       time.Now().UTC().Format(time.RFC3339),
		OofShard:          fmt.Sprintf("%d", rand.Intn(5)),
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "orders",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", order.OrderUID)
		case <-ctx.Done():
			return
		}
	}
}
