package singleton

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// HealthCheckTimeout 健康检查超时时间
const HealthCheckTimeout = 2 * time.Second

// ErrAlreadyRunning 已有健康的 taskd 实例占用 HTTP 端口
var ErrAlreadyRunning = errors.New("taskd is already running")

// CheckPorts 启动前检查 HTTP 与 gRPC 端口
// HTTP 端口被占用且 /health 正常时返回 ErrAlreadyRunning（调用者应直接退出）
// 端口被其他进程占用时返回错误
func CheckPorts(httpPort, grpcPort string) error {
	if err := probe(httpPort); err != nil {
		if isAddrInUse(err) && isInstanceRunning(httpPort) {
			return ErrAlreadyRunning
		}
		return fmt.Errorf("http port %s unavailable: %w", httpPort, err)
	}
	if err := probe(grpcPort); err != nil {
		return fmt.Errorf("grpc port %s unavailable: %w", grpcPort, err)
	}
	return nil
}

// probe 尝试监听后立即释放
func probe(port string) error {
	listener, err := net.Listen("tcp", port)
	if err != nil {
		return err
	}
	return listener.Close()
}

// isAddrInUse 检查错误是否是地址已在使用
// Windows: WSAEADDRINUSE (10048)
func isAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno == 10048 {
		return true
	}
	return strings.Contains(err.Error(), "address already in use")
}

// isInstanceRunning 检查 HTTP 端口上的实例是否健康
func isInstanceRunning(port string) bool {
	client := &http.Client{
		Timeout: HealthCheckTimeout,
	}

	resp, err := client.Get(healthURL(port))
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// healthURL ":8081" 与 "0.0.0.0:8081" 都探测本机
func healthURL(port string) string {
	host, p, err := net.SplitHostPort(port)
	if err != nil {
		return fmt.Sprintf("http://localhost%s/health", port)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/health", net.JoinHostPort(host, p))
}
