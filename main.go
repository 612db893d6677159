package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"bingo/configs"
	"bingo/game"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	godotenv.Load()

	// logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	envs := configs.Load()

	if envs.GIN_MODE != "" {
		gin.SetMode(envs.GIN_MODE)
	}

	if envs.ALLOWED_ORIGINS == "" {
		log.Fatal("Missing allowed origins")
	}
	allowedOrigins := strings.Split(envs.ALLOWED_ORIGINS, ",")

	addr := envs.ADDR
	if addr == "" {
		addr = ":5000"
	}

	idleTimeout := time.Minute * 30
	if envs.ROOM_IDLE_TIMEOUT != "" {
		d, err := time.ParseDuration(envs.ROOM_IDLE_TIMEOUT)
		if err != nil {
			log.Fatal("Bad ROOM_IDLE_TIMEOUT: ", err)
		}
		idleTimeout = d
	}

	// Dependencies
	tickerGen := game.NewTickerGen()
	room := game.NewRoom(game.NewCardDealer(), game.NewRandomDrawer(), &tickerGen, idleTimeout)

	roomStarted := make(chan struct{})
	go room.Run(roomStarted)
	<-roomStarted

	gameHandler := game.NewGameHandler(room)

	r := CreateServer(allowedOrigins)
	r.GET("/ws", gameHandler.ConnectHandler)

	r.Run(addr)
}
