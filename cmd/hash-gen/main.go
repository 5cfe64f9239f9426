package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"brand-connector.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	checkHashFn    = crypto.CheckPassword
	fatalfFn       = log.Fatalf
)

var stdin io.Reader = os.Stdin

var errNoPassword = errors.New("usage: hash-gen [-check HASH] PASSWORD (or pipe the password on stdin)")

type request struct {
	password string
	check    string
}

// parseArgs reads an optional "-check HASH" pair followed by the password.
// Without a password argument the first stdin line is used.
func parseArgs(args []string, in io.Reader) (request, error) {
	var req request
	if len(args) >= 2 && args[0] == "-check" {
		req.check = args[1]
		args = args[2:]
	}
	if len(args) > 0 {
		req.password = args[0]
		return req, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	req.password = strings.TrimRight(line, "\r\n")
	if req.password == "" {
		return req, errNoPassword
	}
	return req, nil
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	req, err := parseArgs(os.Args[1:], stdin)
	if err != nil {
		fatalfFn("%v", err)
		return
	}

	if req.check != "" {
		if checkHashFn(req.password, req.check) {
			printfFn("Password matches hash\n")
			return
		}
		fatalfFn("Password does not match hash")
		return
	}

	hash, err := generateHashFn(req.password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
