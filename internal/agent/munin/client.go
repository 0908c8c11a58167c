// Package munin implements client for munin-node text protocol.
//
// The protocol is synchronous: one request is in flight at a time and its
// response must be read fully before the next request is sent.
//
//	client, err := munin.Dial(ctx, "localhost:4949", 10*time.Second, logger)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	plugins, err := client.ListPlugins()
//	...
//	lines, err := client.Fetch(plugins[0])
//	for lines.Next() {
//		fmt.Println(lines.Text())
//	}
//	if err := lines.Err(); err != nil {
//		return err
//	}
package munin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	listCommand   = "list"
	fetchCommand  = "fetch"
	endOfResponse = "."
	commentPrefix = "#"
	pluginsSep    = " "
)

var (
	ErrConnect          = errors.New("munin connect error")
	ErrConnectionClosed = errors.New("munin connection closed")
	ErrResponsePending  = errors.New("previous response is not read")
)

// Client holds the single stream connection to munin-node.
type Client struct {
	conn     net.Conn
	reader   *bufio.Reader
	logger   *zap.SugaredLogger
	greeting string
	pending  bool // fetch response is not drained yet
}

// Dial connects to munin-node and reads the greeting line.
// Timeout bounds both connection and greeting read.
func Dial(ctx context.Context, address string, timeout time.Duration, logger *zap.SugaredLogger) (*Client, error) {
	logger.Debugw("Connect to munin", "address", address, "timeout", timeout)
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: address '%s': %w", ErrConnect, address, err)
	}
	client := newClient(conn, logger)
	if err := client.readGreeting(timeout); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Debugw("Close munin connection", "error", closeErr)
		}
		return nil, fmt.Errorf("%w: address '%s': %w", ErrConnect, address, err)
	}
	logger.Debugw("Munin greeting", "line", client.greeting)
	return client, nil
}

func newClient(conn net.Conn, logger *zap.SugaredLogger) *Client {
	return &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
		logger: logger,
	}
}

func (c *Client) readGreeting(timeout time.Duration) error {
	if timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}
	line, err := c.readLine()
	if err != nil {
		return fmt.Errorf("read greeting: %w", err)
	}
	c.greeting = line
	if err := c.conn.SetDeadline(time.Time{}); err != nil {
		return fmt.Errorf("reset deadline: %w", err)
	}
	return nil
}

// Greeting returns the first line sent by munin-node.
func (c *Client) Greeting() string {
	return c.greeting
}

// ListPlugins requests plugins list. Names are returned in the node order.
func (c *Client) ListPlugins() ([]string, error) {
	if err := c.send(listCommand); err != nil {
		return nil, err
	}
	line, err := c.readLine()
	if err != nil {
		return nil, fmt.Errorf("read plugins list: %w", err)
	}
	return strings.Split(line, pluginsSep), nil
}

// Fetch requests plugin values. The returned Lines must be drained
// before the next request is sent.
func (c *Client) Fetch(plugin string) (*Lines, error) {
	c.logger.Debugw("Fetch plugin", "plugin", plugin)
	if err := c.send(fetchCommand + " " + plugin); err != nil {
		return nil, err
	}
	c.pending = true
	return &Lines{client: c}, nil
}

// Close closes connection to munin-node.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) send(command string) error {
	if c.pending {
		return fmt.Errorf("send '%s': %w", command, ErrResponsePending)
	}
	if _, err := io.WriteString(c.conn, command+"\n"); err != nil {
		return fmt.Errorf("send '%s': %w", command, err)
	}
	return nil
}

// readLine reads one line without surrounding whitespace.
// EOF before a line end means the node closed the connection, except
// for the final terminator line sent without the line end.
func (c *Client) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) == endOfResponse {
				return endOfResponse, nil
			}
			return "", ErrConnectionClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Lines is the cursor over one fetch response.
// It is bound to its Client; the Client refuses new requests until
// the cursor reaches the end of response or an error.
type Lines struct {
	client *Client
	line   string
	err    error
	done   bool
}

// Next reads the next data line. It returns false on the terminator
// line ('.' or empty line) or on error. Comment lines are skipped.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}
	for {
		line, err := l.client.readLine()
		if err != nil {
			l.finish(fmt.Errorf("read response: %w", err))
			return false
		}
		l.client.logger.Debugw("Iterate over line", "line", line)
		switch {
		case line == "" || line == endOfResponse:
			l.finish(nil)
			return false
		case strings.HasPrefix(line, commentPrefix):
			continue
		}
		l.line = line
		return true
	}
}

// Text returns the line read by the last Next call.
func (l *Lines) Text() string {
	return l.line
}

// Err returns the error stopped the cursor, nil on normal end.
func (l *Lines) Err() error {
	return l.err
}

func (l *Lines) finish(err error) {
	l.done = true
	l.line = ""
	l.err = err
	l.client.pending = false
}
