package ws

import (
	"encoding/hex"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler は接続ごとにエコーループを実行するhttp.Handler
type Handler struct {
	upgrader     websocket.Upgrader
	previewBytes int
}

// New は新しいHandlerを作成する
// previewBytesはログに表示するペイロードの最大バイト数
func New(previewBytes int) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			// テスト用サーバーのためオリジンは検証しない
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		previewBytes: previewBytes,
	}
}

// ServeHTTP はハンドシェイクを実行し、接続が閉じるまでエコーを繰り返す
// 任意のパスでアップグレードを受け付ける
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// アップグレード失敗のレスポンスはUpgraderが書き込み済み
		log.Printf("WebSocketアップグレードに失敗しました: remote=%s err=%v", r.RemoteAddr, err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// ログ追跡用の接続ID
	id := uuid.NewString()
	log.Printf("WebSocket接続を確立しました: id=%s remote=%s", id, conn.RemoteAddr())

	h.echoLoop(id, conn)
}

// echoLoop は1つの接続に対して読み取りとエコーを繰り返す
// 読み書きのエラーはこの接続のループを終えるだけで、他の接続には影響しない
func (h *Handler) echoLoop(id string, conn *websocket.Conn) {
	for {
		// ping/pongと分割フレームの再結合はReadMessageが処理する
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket接続が閉じられました: id=%s reason=%v", id, err)
			return
		}

		log.Printf("エコー: id=%s type=%s payload=%s",
			id, messageTypeName(messageType), preview(messageType, message, h.previewBytes))

		// 受信したフレーム種別のままエコーする
		if err := conn.WriteMessage(messageType, message); err != nil {
			log.Printf("WebSocket書き込みに失敗しました: id=%s reason=%v", id, err)
			return
		}
	}
}

// messageTypeName はメッセージ種別をログ表示用の文字列に変換する
func messageTypeName(messageType int) string {
	switch messageType {
	case websocket.TextMessage:
		return "text"
	case websocket.BinaryMessage:
		return "binary"
	default:
		return fmt.Sprintf("unknown(%d)", messageType)
	}
}

// preview はペイロードをログ表示用に切り詰める
// テキストはそのまま、バイナリは16進数で表示する
func preview(messageType int, payload []byte, limit int) string {
	truncated := false
	if limit >= 0 && len(payload) > limit {
		payload = payload[:limit]
		truncated = true
	}

	var s string
	if messageType == websocket.TextMessage {
		s = string(payload)
	} else {
		s = "0x" + hex.EncodeToString(payload)
	}

	if truncated {
		s += "..."
	}
	return s
}
