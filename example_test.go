package rixio_test

import (
	"fmt"
	"log"

	"github.com/rixcpp/rixio"
)

// ExampleWriteFileText demonstrates a whole-file round trip through a
// temporary path.
func ExampleWriteFileText() {
	path := rixio.TempPath("rixio_example")

	content := "Rix IO example\n--------------\nThis file was created by rixio.\n"
	if err := rixio.WriteFileText(path, content, rixio.WriteTruncate); err != nil {
		log.Fatal(err)
	}

	loaded, err := rixio.ReadFileText(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(loaded)

	// cleanup best-effort
	_ = rixio.Remove(path)

	// Output:
	// Rix IO example
	// --------------
	// This file was created by rixio.
}

// ExampleNewInMemoryFS shows the same operations running entirely in
// memory, which is handy in tests.
func ExampleNewInMemoryFS() {
	fsys := rixio.NewInMemoryFS()

	if err := fsys.WriteFileText("notes.txt", "abc", rixio.WriteTruncate); err != nil {
		log.Fatal(err)
	}
	if err := fsys.WriteFileText("notes.txt", "def", rixio.WriteAppend); err != nil {
		log.Fatal(err)
	}

	text, err := fsys.ReadFileText("notes.txt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(text)

	// Output:
	// abcdef
}

// ExampleAppendPOD assembles a small binary record in a Buffer and reads a
// field back by offset.
func ExampleAppendPOD() {
	var b rixio.Buffer
	rixio.AppendPOD(&b, uint32(1234567))
	rixio.AppendPOD(&b, uint16(42))

	magic, err := rixio.ReadPOD[uint32](&b, 0)
	if err != nil {
		log.Fatal(err)
	}
	count, err := rixio.ReadPOD[uint16](&b, 4)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(magic, count, b.Len())

	// Output:
	// 1234567 42 6
}

// ExampleFS_Open shows explicit handle management with mode enforcement.
func ExampleFS_Open() {
	fsys := rixio.NewInMemoryFS()

	f, err := fsys.Open("data.bin", rixio.ModeWrite, rixio.TypeBinary)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := f.WriteBytes([]byte{0x01, 0x02, 0x03}); err != nil {
		log.Fatal(err)
	}

	// The handle was opened write-only; reads are refused.
	_, err = f.ReadAllBytes()
	fmt.Println(err != nil)

	// Output:
	// true
}
