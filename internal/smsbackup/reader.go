// Package smsbackup reads the XML dump format produced by SMS backup
// apps: a <smses> root with one <sms> element per message, the receive
// time in epoch milliseconds.
package smsbackup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Message is one SMS entry from a backup dump.
type Message struct {
	// Address is the raw sender ID exactly as received.
	Address string

	// Date is the receive timestamp in epoch milliseconds.
	Date int64

	// Body is the message text.
	Body string
}

type smsElement struct {
	Address string `xml:"address,attr"`
	Date    string `xml:"date,attr"`
	Body    string `xml:"body,attr"`
}

// Read decodes a backup dump. Messages with a blank body or an
// unparsable date attribute are skipped rather than failing the whole
// dump; backups in the wild routinely contain a few mangled entries.
func Read(r io.Reader) ([]Message, error) {
	var msgs []Message
	err := ReadFunc(r, func(m Message) error {
		msgs = append(msgs, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ReadFunc streams a backup dump, calling fn once per message. Dumps
// can hold years of messages, so the file is never held in memory as a
// whole. A non-nil error from fn aborts the scan.
func ReadFunc(r io.Reader, fn func(Message) error) error {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ReadFunc: decode token: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "sms" {
			continue
		}

		var el smsElement
		if err := dec.DecodeElement(&el, &start); err != nil {
			return fmt.Errorf("ReadFunc: decode sms element: %w", err)
		}
		if el.Body == "" {
			continue
		}
		date, err := strconv.ParseInt(el.Date, 10, 64)
		if err != nil {
			continue
		}

		if err := fn(Message{Address: el.Address, Date: date, Body: el.Body}); err != nil {
			return err
		}
	}
}
