package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"kodama/internal/config"

	"github.com/gin-gonic/gin"
)

// helloResponse はGET /helloのレスポンスボディ
type helloResponse struct {
	Message string `json:"message"`
}

// echoHandler はHTTPレスポンダーの固定ルートを実装する
type echoHandler struct {
	config *config.Config
}

// newRouter はHTTPレスポンダーのルーターを構築する
func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), accessLog())

	h := &echoHandler{config: cfg}
	router.GET("/hello", h.handleHello)
	router.POST("/echo", h.handleEcho)

	// 上記以外のメソッド・パスの組み合わせはすべて404
	router.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	return router
}

// accessLog は完了したリクエストを1行ずつコンソールに出力する
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Printf("HTTPリクエストを処理しました: %s %s -> %d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

// handleHello は固定のJSONペイロードを返す
func (h *echoHandler) handleHello(c *gin.Context) {
	body, err := json.Marshal(helloResponse{Message: "hello"})
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Content-Typeにcharsetパラメーターを付けない
	c.Data(http.StatusOK, "application/json", body)
}

// handleEcho はリクエストボディとContent-Typeをそのまま返す
func (h *echoHandler) handleEcho(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("リクエストボディの読み込みに失敗しました: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Content-Typeヘッダーがなければデフォルト値を適用する
	contentType := c.GetHeader("Content-Type")
	if contentType == "" {
		contentType = h.config.Echo.DefaultContentType
	}

	c.Data(http.StatusOK, contentType, body)
}
