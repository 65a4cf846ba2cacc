package smsbackup

import (
	"errors"
	"strings"
	"testing"
)

const sampleDump = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<smses count="4">
  <sms protocol="0" address="AX-AXISBK-S" date="1759657407000" type="1" body="Spent INR 131" />
  <sms protocol="0" address="VM-BOBTXN-S" date="1759657500000" type="1" body="Rs.29 transferred from A/c ...5494" />
  <sms protocol="0" address="XY-PROMO" date="not-a-date" type="1" body="skipped: bad date" />
  <sms protocol="0" address="XY-EMPTY" date="1759657600000" type="1" body="" />
</smses>`

func TestRead(t *testing.T) {
	msgs, err := Read(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2 (mangled entries skipped)", len(msgs))
	}
	if msgs[0].Address != "AX-AXISBK-S" || msgs[0].Date != 1759657407000 {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[1].Body != "Rs.29 transferred from A/c ...5494" {
		t.Errorf("second body = %q", msgs[1].Body)
	}
}

func TestReadFuncAbortsOnCallbackError(t *testing.T) {
	sentinel := errors.New("stop")
	calls := 0
	err := ReadFunc(strings.NewReader(sampleDump), func(Message) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if calls != 1 {
		t.Fatalf("callback ran %d times after aborting", calls)
	}
}

func TestReadRejectsTruncatedXML(t *testing.T) {
	if _, err := Read(strings.NewReader("<smses><sms address=\"A\" date=\"1\" body=\"x\"")); err == nil {
		t.Fatal("Read accepted truncated XML")
	}
}
