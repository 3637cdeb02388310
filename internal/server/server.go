package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kodama/internal/config"
	"kodama/internal/ws"
)

// Server は2つのリスナー（HTTPレスポンダーとWebSocketエコー）を管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	wsServer   *http.Server
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress(),
			Handler:      newRouter(cfg),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		// WebSocketリスナーはアイドル接続を切らないためタイムアウトを設定しない
		wsServer: &http.Server{
			Addr:    cfg.WSAddress(),
			Handler: ws.New(cfg.Echo.PreviewBytes),
		},
	}
}

// Start は2つのリスナーを起動し、停止要因が発生するまで待つ
// どちらかのリスナーの起動失敗（ポート使用中など）はそのままエラーとして返す
func (s *Server) Start(ctx context.Context) error {
	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 2)

	// HTTPレスポンダーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPレスポンダーを起動しています: %s", s.config.HTTPAddress())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("HTTPレスポンダーの起動に失敗: %w", err)
		}
	}()

	// WebSocketエコーを別ゴルーチンで起動
	go func() {
		log.Printf("WebSocketエコーを起動しています: %s", s.config.WSAddress())
		if err := s.wsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("WebSocketエコーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルか起動エラーを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		// 片方が失敗したらもう片方も閉じてからエラーを返す
		_ = s.Shutdown()
		return err
	}

	// シャットダウン
	return s.Shutdown()
}

// Shutdown は両方のリスナーを停止する
// WebSocket接続は排出せずに閉じ、HTTPレスポンダーはグレースフルに停止する
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// WebSocketリスナーを即座に閉じる（処理中の接続も切断される）
	if err := s.wsServer.Close(); err != nil {
		return fmt.Errorf("WebSocketエコーの停止に失敗: %w", err)
	}

	// HTTPレスポンダーは5秒のタイムアウトでグレースフルに停止する
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTPレスポンダーの停止に失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
