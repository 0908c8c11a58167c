package munin

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const greeting = "# munin node at test.local"

// fakeNode serves one connection. Every received command is answered
// with the text from responses; unknown commands close the connection.
func fakeNode(t *testing.T, hello string, responses map[string]string) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "listen error")
	t.Cleanup(func() { listener.Close() })
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, err := conn.Write([]byte(hello)); err != nil {
			return
		}
		reader := bufio.NewReader(conn)
		for {
			command, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			response, ok := responses[strings.TrimSpace(command)]
			if !ok {
				return
			}
			if _, err := conn.Write([]byte(response)); err != nil {
				return
			}
		}
	}()
	return listener.Addr().String()
}

func dialNode(t *testing.T, responses map[string]string) *Client {
	t.Helper()
	address := fakeNode(t, greeting+"\n", responses)
	client, err := Dial(context.Background(), address, time.Second, zap.NewNop().Sugar())
	require.NoError(t, err, "dial error")
	t.Cleanup(func() { client.Close() })
	return client
}

func drain(t *testing.T, lines *Lines) []string {
	t.Helper()
	got := make([]string, 0)
	for lines.Next() {
		got = append(got, lines.Text())
	}
	return got
}

func TestDial(t *testing.T) {
	client := dialNode(t, nil)
	assert.Equal(t, greeting, client.Greeting())
}

func TestDial_errors(t *testing.T) {
	t.Run("Connection refused", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		address := listener.Addr().String()
		listener.Close()
		_, err = Dial(context.Background(), address, time.Second, zap.NewNop().Sugar())
		assert.ErrorIs(t, err, ErrConnect)
	})
	t.Run("Greeting timeout", func(t *testing.T) {
		address := fakeNode(t, "", nil)
		_, err := Dial(context.Background(), address, 100*time.Millisecond, zap.NewNop().Sugar())
		assert.ErrorIs(t, err, ErrConnect)
	})
	t.Run("Partial greeting", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()
		go func() {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Write([]byte("# munin node"))
			conn.Close()
		}()
		_, err = Dial(context.Background(), listener.Addr().String(), time.Second, zap.NewNop().Sugar())
		assert.ErrorIs(t, err, ErrConnect)
		assert.ErrorIs(t, err, ErrConnectionClosed)
	})
}

func TestClient_ListPlugins(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{name: "Order preserved", response: "cpu_load memory df\n", want: []string{"cpu_load", "memory", "df"}},
		{name: "Duplicates kept", response: "df df\n", want: []string{"df", "df"}},
		{name: "Dotted name", response: "if.eth0 load\n", want: []string{"if.eth0", "load"}},
		{name: "Empty names kept", response: "a  b\n", want: []string{"a", "", "b"}},
		{name: "Surrounding whitespace", response: "  load\r\n", want: []string{"load"}},
		{name: "Empty list", response: "\n", want: []string{""}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := dialNode(t, map[string]string{"list": tt.response})
			got, err := client.ListPlugins()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "Dot terminator",
			response: "load.value 0.42\n.\n",
			want:     []string{"load.value 0.42"},
		},
		{
			name:     "Empty line terminator",
			response: "user.value 1\nsystem.value 2\n\nnever.value 3\n.\n",
			want:     []string{"user.value 1", "system.value 2"},
		},
		{
			name:     "Comments in every position",
			response: "# first\nuser.value 1\n# middle\nsystem.value 2\n#last\n.\n",
			want:     []string{"user.value 1", "system.value 2"},
		},
		{
			name:     "Whitespace stripped",
			response: "  user.value 1 \r\n .\r\n",
			want:     []string{"user.value 1"},
		},
		{
			name:     "No data lines",
			response: ".\n",
			want:     []string{},
		},
		{
			name:     "Only comments",
			response: "# Unknown service\n.\n",
			want:     []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := dialNode(t, map[string]string{"fetch load": tt.response})
			lines, err := client.Fetch("load")
			require.NoError(t, err)
			got := drain(t, lines)
			assert.NoError(t, lines.Err())
			assert.Equal(t, tt.want, got)
			assert.False(t, lines.Next(), "drained cursor must stay finished")
			assert.Empty(t, lines.Text())
		})
	}
}

func TestClient_Fetch_sequential(t *testing.T) {
	client := dialNode(t, map[string]string{
		"list":         "load memory\n",
		"fetch load":   "load.value 0.42\n.\n",
		"fetch memory": "free.value 10\nused.value 20\n.\n",
	})
	plugins, err := client.ListPlugins()
	require.NoError(t, err)
	got := make(map[string][]string)
	for _, plugin := range plugins {
		lines, err := client.Fetch(plugin)
		require.NoError(t, err)
		got[plugin] = drain(t, lines)
		require.NoError(t, lines.Err())
	}
	assert.Equal(t, map[string][]string{
		"load":   {"load.value 0.42"},
		"memory": {"free.value 10", "used.value 20"},
	}, got)
}

func TestClient_Fetch_pending(t *testing.T) {
	client := dialNode(t, map[string]string{
		"fetch load": "load.value 0.42\n.\n",
		"list":       "load\n",
	})
	lines, err := client.Fetch("load")
	require.NoError(t, err)
	require.True(t, lines.Next())

	_, err = client.ListPlugins()
	assert.True(t, errors.Is(err, ErrResponsePending), "request before drain must fail")
	_, err = client.Fetch("load")
	assert.ErrorIs(t, err, ErrResponsePending)

	assert.False(t, lines.Next())
	require.NoError(t, lines.Err())
	plugins, err := client.ListPlugins()
	require.NoError(t, err)
	assert.Equal(t, []string{"load"}, plugins)
}

// serveOnce answers the first command with response and closes the connection.
func serveOnce(t *testing.T, response string) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte(greeting + "\n"))
		if _, err := bufio.NewReader(conn).ReadString('\n'); err != nil {
			return
		}
		conn.Write([]byte(response))
	}()
	return listener.Addr().String()
}

func TestClient_Fetch_terminatorAtEOF(t *testing.T) {
	client, err := Dial(context.Background(), serveOnce(t, "a.value 1\n."), time.Second, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer client.Close()

	lines, err := client.Fetch("load")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.value 1"}, drain(t, lines))
	assert.NoError(t, lines.Err())
}

func TestClient_Fetch_disconnect(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "Closed after full line", response: "load.value 0.42\n"},
		{name: "Closed inside line", response: "load.value 0."},
		{name: "Closed without data", response: ""},
		{name: "Closed after data without line end", response: "a.value 1\nb.value"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client, err := Dial(context.Background(), serveOnce(t, tt.response), time.Second, zap.NewNop().Sugar())
			require.NoError(t, err)
			defer client.Close()

			lines, err := client.Fetch("load")
			require.NoError(t, err)
			drain(t, lines)
			assert.ErrorIs(t, lines.Err(), ErrConnectionClosed)
		})
	}
}
