package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with index.html / js / svg (empty = API only)")
	verbose := flag.Bool("v", false, "log every move of every game")
	idle := flag.Duration("idle", 2*time.Hour, "drop games idle for longer than this (0 = never)")
	open := flag.Bool("open", false, "open the default browser once listening")
	flag.Parse()

	games := game.NewManager()
	if *verbose {
		games.Logger = log.New(os.Stderr, "xiangqi ", log.LstdFlags)
	}

	if *idle > 0 {
		go func() {
			for range time.Tick(*idle / 4) {
				if n := games.Prune(*idle); n > 0 {
					log.Printf("pruned %d idle games, %d left", n, games.Len())
				}
			}
		}()
	}

	mux := httpserver.NewMux(httpserver.NewHandler(games), *webDir)

	if *webDir != "" {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	} else {
		log.Printf("listening on %s (API only)", *addr)
	}

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
