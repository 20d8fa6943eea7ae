// Package util provides id, name and network helpers for the grading
// service.
package util

import (
	"crypto/rand"
	"log"
	"math/big"
	"net"

	"github.com/nats-io/nuid"
	"github.com/pkg/errors"
	hashids "github.com/speps/go-hashids"
)

// GenerateName returns a short human-usable service name (hashid).
func GenerateName() string {
	name := "grader"

	number, err := rand.Int(rand.Reader, big.NewInt(10000000))
	if err != nil {
		return name
	}

	hd := hashids.NewData()
	hd.Salt = "xlsx-autograder random name generator"
	hd.MinLength = 5
	h, err := hashids.NewWithData(hd)
	if err != nil {
		log.Println("error auto-generating name: ", err)
		return name
	}
	e, err := h.EncodeInt64([]int64{number.Int64()})
	if err != nil {
		log.Println("error encoding auto-generated name: ", err)
		return name
	}

	return e
}

// GenerateID returns a unique service id - nuid in this case.
func GenerateID() string {
	return nuid.Next()
}

// AvailablePort finds an available tcp port.
func AvailablePort() (int, error) {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire a tcp port")
	}
	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port, nil
}
