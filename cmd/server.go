// Package main はKodamaサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"kodama/internal/config"
	"kodama/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		httpPort   = flag.Int("http-port", 0, "HTTPレスポンダーのポート (デフォルト: 8080)")
		wsPort     = flag.Int("ws-port", 0, "WebSocketエコーのポート (デフォルト: 8081)")
		configFile = flag.String("config", "", "YAML設定ファイルのパス")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Kodama")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定ファイルが指定されていれば環境変数より優先する
	if *configFile != "" {
		if err := os.Setenv("KODAMA_CONFIG", *configFile); err != nil {
			log.Fatalf("設定ファイルパスの設定に失敗しました: %v", err)
		}
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *httpPort != 0 {
		cfg.Server.HTTPPort = *httpPort
	}
	if *wsPort != 0 {
		cfg.Server.WSPort = *wsPort
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("Kodama サーバーを起動します: HTTP=%s WS=%s", cfg.HTTPAddress(), cfg.WSAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
