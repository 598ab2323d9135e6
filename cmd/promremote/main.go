// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command promremote is an experimental HTTP façade that serves decompressed
// .bro streams as JSON, shaped loosely after Prometheus's remote-read API.
// It carries no format-compatibility guarantee and speaks no protobuf: this
// is net/http + encoding/json standing in for the real remote-read wire
// protocol.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/stream"
)

var dashAddr string

func init() {
	flag.StringVar(&dashAddr, "addr", ":9201", "address to listen on")
}

// point is one decompressed sample, in the shape the façade returns.
type point struct {
	T int     `json:"t"`
	V float64 `json:"v"`
}

func main() {
	flag.Parse()
	http.HandleFunc("/api/v1/read", handleRead)
	log.Printf("promremote listening on %s", dashAddr)
	if err := http.ListenAndServe(dashAddr, nil); err != nil {
		log.Fatal(err)
	}
}

func handleRead(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("stream")
	if path == "" {
		http.Error(w, "missing stream parameter", http.StatusBadRequest)
		return
	}

	points, err := readStream(path)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

func readStream(path string) ([]point, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, brro.NewError(brro.InvalidInput, "promremote.readStream", err.Error())
	}
	s, err := stream.FromBytes(buf)
	if err != nil {
		return nil, err
	}
	samples, err := s.Decompress()
	if err != nil {
		return nil, err
	}
	points := make([]point, len(samples))
	for i, v := range samples {
		points[i] = point{T: i, V: v}
	}
	return points, nil
}

// writeError maps a brro.Error's Kind to an HTTP status, the façade's own
// ambient concern and not part of the core error type.
func writeError(w http.ResponseWriter, err error) {
	var berr *brro.Error
	status := http.StatusInternalServerError
	if errors.As(err, &berr) {
		switch berr.Kind {
		case brro.InvalidInput:
			status = http.StatusBadRequest
		case brro.Malformed, brro.LengthMismatch:
			status = http.StatusUnprocessableEntity
		}
	}
	http.Error(w, err.Error(), status)
}
