package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/otpgate/internal/identity/usecase.(*Usecase).Register(0xc000)
	/src/otpgate/internal/identity/usecase/register.go:42 +0x1a
net/http.HandlerFunc.ServeHTTP(...)
	/usr/local/go/src/net/http/server.go:2220
`)

	assert.Equal(t, []string{"internal/identity/usecase/register.go:42"}, InternalPaths(stack))
	assert.Empty(t, InternalPaths(nil))
}
