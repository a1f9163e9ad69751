package pkg

import (
	"bytes"
	"io"
	"net/http"
	"time"
)

var (
	crlf       = []byte("\r\n")
	headerDate = []byte("Date: ")
)

// appendTime is a non-allocating version of []byte(t.UTC().Format(TimeFormat))
func appendTime(b []byte, t time.Time) []byte {
	const days = "SunMonTueWedThuFriSat"

	const months = "JanFebMarAprMayJunJulAugSepOctNovDec"

	t = t.UTC()
	yy, mm, dd := t.Date()
	hh, mn, ss := t.Clock()
	day := days[3*t.Weekday():]
	mon := months[3*(mm-1):]

	return append(b,
		day[0], day[1], day[2], ',', ' ',
		byte('0'+dd/10), byte('0'+dd%10), ' ',
		mon[0], mon[1], mon[2], ' ',
		byte('0'+yy/1000), byte('0'+(yy/100)%10), byte('0'+(yy/10)%10), byte('0'+yy%10), ' ',
		byte('0'+hh/10), byte('0'+hh%10), ':',
		byte('0'+mn/10), byte('0'+mn%10), ':',
		byte('0'+ss/10), byte('0'+ss%10), ' ',
		'G', 'M', 'T')
}

// writeCannedResponse writes the fixed diagnostic reply: a 200 OK in plain
// text echoing the parsed method and path plus the full raw request. This
// is a stub, not a response pipeline; the connection is always closed
// afterwards, so it declares Connection: close.
func writeCannedResponse(w io.Writer, req *Request) error {
	var b bytes.Buffer

	var dateBuf [len(http.TimeFormat)]byte

	b.WriteString("HTTP/1.1 200 OK\r\n")
	b.WriteString("Content-Type: text/plain\r\n")
	b.Write(headerDate)
	b.Write(appendTime(dateBuf[:0], time.Now()))
	b.Write(crlf)
	b.WriteString("Connection: close\r\n")
	b.Write(crlf)
	b.WriteString("Request received successfully!\n")
	b.WriteString("Method: ")
	b.WriteString(req.Method().String())
	b.WriteString("\n")
	b.WriteString("Path: ")
	b.WriteString(req.Path())
	b.WriteString("\n")
	b.WriteString("Full Request:\n")
	b.WriteString(req.RawRequest())

	_, err := w.Write(b.Bytes())

	return err
}
