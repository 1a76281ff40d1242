package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"restaurant_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const orderEventChannel = "orders:events"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	orderClients = make(map[*websocket.Conn]bool)
	mu           sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// PublishOrderEvent đẩy trạng thái đơn mới lên Redis để mọi instance
// broadcast cho admin UI đang mở.
func PublishOrderEvent(order *model.Order) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "order.updated",
		"orderId": order.ID,
		"code":    order.PublicCode,
		"status":  order.Status,
	})
	if err != nil {
		return
	}
	if err := redisClient.Publish(context.Background(), orderEventChannel, payload).Err(); err != nil {
		log.Printf("publish order event failed: %v", err)
	}
}

// OrderFeed xử lý WS connection của admin UI: nghe kênh Redis và đẩy
// từng event xuống mọi client đang kết nối.
func OrderFeed(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(orderClients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	orderClients[c] = true
	mu.Unlock()

	pubsub := redisClient.Subscribe(context.Background(), orderEventChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range orderClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(orderClients, conn)
			}
		}
		mu.Unlock()
	}
}
