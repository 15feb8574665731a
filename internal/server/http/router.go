package httpserver

import "net/http"

// NewMux 挂载 /api/ 接口；webDir 非空时在 / 下提供静态文件
func NewMux(h *Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}
