package pkg

import (
	"errors"
	"io"
	"net"
	"strconv"
)

var errNoClientAddr = errors.New("server: client address required for direct send")

// dialAndSend opens a one-shot TCP connection to the client endpoint and
// writes message. Responses to accepted connections go out inside
// ReceiveMessage; this path exists only for explicit sends to a known
// endpoint.
func (s *TCPServer) dialAndSend(message, ip string, port int) error {
	if ip == "" || port <= 0 {
		return errNoClientAddr
	}

	conn, err := net.Dial("tcp", net.JoinHostPort(ip, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, message); err != nil {
		return err
	}

	s.sentCount++

	return nil
}
