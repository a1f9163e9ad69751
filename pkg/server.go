package pkg

import (
	"errors"
	"log"
	"net"
	"strconv"
	"sync"
	"time"
)

// DefaultPort is the port a server listens on when the caller has no
// preference.
const DefaultPort = 8080

var (
	ErrNotRunning     = errors.New("server: not running")
	ErrAlreadyRunning = errors.New("server: already running")
)

// ServerType identifies the transport of a Server implementation.
type ServerType int

const (
	ServerTypeTCP ServerType = iota
	ServerTypeUDP
)

var serverTypeNames = map[ServerType]string{
	ServerTypeTCP: "tcp",
	ServerTypeUDP: "udp",
}

func (t ServerType) String() string {
	return serverTypeNames[t]
}

// Server is the common surface of network servers. Implementations are
// selected by name through a Registry; the only one shipped here is the
// TCP server. A UDP variant would satisfy the same interface.
//
// The model is strictly sequential: one connection is accepted, fully
// drained, parsed, responded to and closed inside each ReceiveMessage call
// before the next accept begins. Nothing on a Server is safe for
// concurrent use.
type Server interface {
	// Start binds the listening socket. Port 0 picks an ephemeral port,
	// reported by Port afterwards.
	Start(port int) error

	// Stop closes the listening socket. It only prevents future
	// accepts; there is no mid-request cancellation.
	Stop()

	IsRunning() bool

	Port() int
	IPAddress() string
	// SetIPAddress sets the bind address. It fails while the server is
	// running.
	SetIPAddress(ip string) error

	// ReceiveMessage accepts one connection, captures one request,
	// writes the canned response and closes the connection. Failures
	// are never fatal; the caller is expected to call again.
	ReceiveMessage() (*Request, error)

	// SendMessage writes message over a fresh connection to the given
	// client endpoint.
	SendMessage(message, clientIP string, clientPort int) error

	LastClientIP() string
	LastClientPort() int

	ReceivedMessageCount() uint64
	SentMessageCount() uint64
	ResetStatistics()

	// MaxMessageSize is the capture ceiling in bytes; 0 means the
	// internal default ceiling applies.
	MaxMessageSize() int
	SetMaxMessageSize(size int) error

	// ReceiveTimeout bounds how long a single socket read may block;
	// 0 blocks indefinitely.
	ReceiveTimeout() time.Duration
	SetReceiveTimeout(d time.Duration) error

	Type() ServerType
}

// TCPServer serves HTTP/1.x requests over TCP, one connection at a time:
// no keep-alive, no pipelining, Content-Length-only framing.
type TCPServer struct {
	// ErrorLog specifies an optional logger for response write
	// failures and other unexpected behavior. If nil, logging is done
	// via the log package's standard logger.
	ErrorLog *log.Logger

	port      int
	ipAddress string
	listener  net.Listener
	running   bool

	lastClientIP   string
	lastClientPort int

	// Counters are plain fields: the sequential model guarantees
	// nothing runs concurrently with them. A concurrent redesign would
	// need to make them atomic.
	receivedCount uint64
	sentCount     uint64

	maxMessageSize int
	receiveTimeout time.Duration
}

// NewTCPServer returns a server bound to all interfaces with the default
// message size limit and no receive timeout.
func NewTCPServer() *TCPServer {
	return &TCPServer{
		ipAddress:      "0.0.0.0",
		maxMessageSize: DefaultMaxMessageSize,
	}
}

func (s *TCPServer) Start(port int) error {
	if s.running {
		return ErrAlreadyRunning
	}

	addr := net.JoinHostPort(s.ipAddress, strconv.Itoa(port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.listener = &onceCloseListener{Listener: ln}
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.running = true

	return nil
}

func (s *TCPServer) Stop() {
	if !s.running {
		return
	}

	s.listener.Close()
	s.running = false
}

func (s *TCPServer) IsRunning() bool { return s.running }

func (s *TCPServer) Port() int { return s.port }

func (s *TCPServer) IPAddress() string { return s.ipAddress }

func (s *TCPServer) SetIPAddress(ip string) error {
	if s.running {
		return ErrAlreadyRunning
	}

	if net.ParseIP(ip) == nil {
		return errors.New("server: invalid IP address " + strconv.Quote(ip))
	}

	s.ipAddress = ip

	return nil
}

func (s *TCPServer) ReceiveMessage() (*Request, error) {
	if !s.running || s.listener == nil {
		return nil, ErrNotRunning
	}

	conn, err := s.listener.Accept()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if ra, ok := conn.RemoteAddr().(*net.TCPAddr); ok {
		s.lastClientIP = ra.IP.String()
		s.lastClientPort = ra.Port
	}

	if s.receiveTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.receiveTimeout))
	}

	raw, err := frameRequest(conn, s.maxMessageSize)
	if err != nil {
		return nil, err
	}

	req := ParseRequest(raw)
	req.clientIP = s.lastClientIP
	req.clientPort = s.lastClientPort

	// Best effort: a client that fails to send a well-formed request
	// still gets some response, unless the socket is already gone.
	if err := writeCannedResponse(conn, req); err != nil {
		s.logf("http: writing response to %s: %v", s.lastClientIP, err)
	} else {
		s.sentCount++
	}

	s.receivedCount++

	return req, nil
}

func (s *TCPServer) SendMessage(message, clientIP string, clientPort int) error {
	if !s.running {
		return ErrNotRunning
	}

	return s.dialAndSend(message, clientIP, clientPort)
}

func (s *TCPServer) LastClientIP() string { return s.lastClientIP }

func (s *TCPServer) LastClientPort() int { return s.lastClientPort }

func (s *TCPServer) ReceivedMessageCount() uint64 { return s.receivedCount }

func (s *TCPServer) SentMessageCount() uint64 { return s.sentCount }

func (s *TCPServer) ResetStatistics() {
	s.receivedCount = 0
	s.sentCount = 0
}

func (s *TCPServer) MaxMessageSize() int { return s.maxMessageSize }

func (s *TCPServer) SetMaxMessageSize(size int) error {
	if s.running {
		return ErrAlreadyRunning
	}

	if size < 0 {
		return errors.New("server: negative max message size")
	}

	s.maxMessageSize = size

	return nil
}

func (s *TCPServer) ReceiveTimeout() time.Duration { return s.receiveTimeout }

func (s *TCPServer) SetReceiveTimeout(d time.Duration) error {
	if d < 0 {
		return errors.New("server: negative receive timeout")
	}

	s.receiveTimeout = d

	return nil
}

func (s *TCPServer) Type() ServerType { return ServerTypeTCP }

func (s *TCPServer) logf(format string, args ...any) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)

		return
	}

	log.Printf(format, args...)
}

// onceCloseListener wraps a net.Listener, protecting it from
// multiple Close calls.
type onceCloseListener struct {
	net.Listener
	once     sync.Once
	closeErr error
}

func (oc *onceCloseListener) Close() error {
	oc.once.Do(oc.close)

	return oc.closeErr
}

func (oc *onceCloseListener) close() {
	oc.closeErr = oc.Listener.Close()
}
