package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	fw "github.com/rawbytedev/framewire"
	"github.com/rawbytedev/framewire/pkg/autorecord"
)

type payload struct {
	Val      []string
	Mod      []int8
	Integers []int16
	Float3   []float32
	Float6   []float64
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	src := &autorecord.Struct[struct {
		Mod      []int8
		Integers []int16
		Float3   []float32
		Float6   []float64
	}]{ID: 7, Version: 1}
	src.Value.Mod = []int8{12, 10, 13, 0}
	src.Value.Integers = []int16{100, 250, 300}
	src.Value.Float3 = []float32{12.13, 16.23, 75.1}
	src.Value.Float6 = []float64{100.5, 165.63, 153.5}

	for i := 0; i < 10000; i++ {
		w, err := fw.NewWriter(128, 0, fw.LittleEndian)
		if err != nil {
			log.Fatal(err)
		}
		if err := fw.EncodeRecord(w, src, fw.EncodeOptions{}); err != nil {
			log.Fatal(err)
		}
		data := w.ReleaseBytes()

		r, err := fw.NewReader(data, fw.LittleEndian)
		if err != nil {
			log.Fatal(err)
		}
		dst := &autorecord.Struct[struct {
			Mod      []int8
			Integers []int16
			Float3   []float32
			Float6   []float64
		}]{ID: 7, Version: 1}
		if err := fw.DecodeRecord(r, dst, fw.EncodeOptions{}); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
