package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	lzf "github.com/zhuyie/golzf"
)

var _ = Describe("readInput", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "binread")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	writeFile := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, data, 0o600)).To(Succeed())
		return path
	}

	It("maps a file", func() {
		expected, err := os.ReadFile("fixtures/scalars.bin")
		Expect(err).NotTo(HaveOccurred())

		data, release, err := readInput(inputOptions{Path: "fixtures/scalars.bin"}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(expected))
		Expect(release()).To(Succeed())
	})

	It("empty file", func() {
		path := writeFile("empty.bin", nil)

		data, release, err := readInput(inputOptions{Path: path}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(BeEmpty())
		Expect(release()).To(Succeed())
	})

	It("file not found", func() {
		_, _, err := readInput(inputOptions{Path: filepath.Join(dir, "missing.bin")}, nil)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("reads stdin", func() {
		data, release, err := readInput(inputOptions{}, bytes.NewReader([]byte{1, 2, 3}))
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2, 3}))
		Expect(release()).To(Succeed())
	})

	It("decompresses LZF", func() {
		expected := bytes.Repeat([]byte("binread"), 64)
		compressed := make([]byte, len(expected)*2)
		n, err := lzf.Compress(expected, compressed)
		Expect(err).NotTo(HaveOccurred())

		path := writeFile("data.lzf", compressed[:n])

		data, release, err := readInput(inputOptions{Path: path, LZFSize: len(expected)}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(expected))
		Expect(release()).To(Succeed())
	})

	It("invalid LZF", func() {
		_, _, err := readInput(inputOptions{LZFSize: 4}, bytes.NewReader([]byte{0x1f, 1}))
		Expect(err).To(MatchError(ContainSubstring("failed to decompress LZF")))
	})

	Describe("redis", func() {
		var server *miniredis.Miniredis

		BeforeEach(func() {
			var err error
			server, err = miniredis.Run()
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			server.Close()
		})

		It("reads the value of a key", func() {
			Expect(server.Set("blob", string([]byte{0x2a, 0x00, 0xff}))).To(Succeed())

			data, release, err := readInput(inputOptions{RedisAddr: server.Addr(), RedisKey: "blob"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte{0x2a, 0x00, 0xff}))
			Expect(release()).To(Succeed())
		})

		It("decompresses LZF values", func() {
			expected := bytes.Repeat([]byte{1, 2, 3, 4}, 32)
			compressed := make([]byte, len(expected)*2)
			n, err := lzf.Compress(expected, compressed)
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Set("blob", string(compressed[:n]))).To(Succeed())

			data, _, err := readInput(inputOptions{RedisAddr: server.Addr(), RedisKey: "blob", LZFSize: len(expected)}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(expected))
		})

		It("key not found", func() {
			_, _, err := readInput(inputOptions{RedisAddr: server.Addr(), RedisKey: "missing"}, nil)
			Expect(err).To(Equal(KeyNotFoundError{Key: "missing"}))
		})

		It("takes precedence over the path", func() {
			Expect(server.Set("blob", "x")).To(Succeed())

			data, _, err := readInput(inputOptions{Path: "fixtures/scalars.bin", RedisAddr: server.Addr(), RedisKey: "blob"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte("x")))
		})
	})
})
