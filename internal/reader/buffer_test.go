package reader

import (
	"errors"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Buffer", func() {
	var (
		data   []byte
		buffer *Buffer
	)

	BeforeEach(func() {
		data = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		buffer = NewBuffer(data)
	})

	It("read data", func() {
		Expect(buffer.ReadBytes(4)).To(Equal(data[0:4]))
		Expect(buffer.Offset()).To(Equal(4))
		Expect(buffer.ReadBytes(6)).To(Equal(data[4:10]))
		Expect(buffer.Offset()).To(Equal(10))
		Expect(buffer.Remaining()).To(BeZero())
	})

	It("returns sub-slices of the data", func() {
		buf, err := buffer.ReadBytes(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(&buf[0]).To(BeIdenticalTo(&data[0]))
	})

	It("read zero bytes", func() {
		Expect(buffer.ReadBytes(0)).To(BeEmpty())
		Expect(buffer.Offset()).To(BeZero())
	})

	It("skip bytes", func() {
		Expect(buffer.SkipBytes(3)).To(Succeed())
		Expect(buffer.ReadBytes(1)).To(Equal([]byte{4}))
	})

	It("out of range", func() {
		Expect(buffer.SkipBytes(8)).To(Succeed())

		actual, err := buffer.ReadBytes(3)
		Expect(actual).To(BeNil())
		Expect(err).To(Equal(OutOfRangeError{Offset: 8, Length: 3, Size: 10}))
		Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
		Expect(buffer.Offset()).To(Equal(8))
	})

	It("negative length", func() {
		_, err := buffer.ReadBytes(-1)
		Expect(err).To(Equal(NegativeLengthError{Length: -1}))
		Expect(buffer.Offset()).To(BeZero())
	})

	It("empty data", func() {
		buffer = NewBuffer(nil)
		Expect(buffer.Len()).To(BeZero())
		Expect(buffer.ReadBytes(0)).To(BeEmpty())

		_, err := buffer.ReadBytes(1)
		Expect(err).To(Equal(OutOfRangeError{Offset: 0, Length: 1, Size: 0}))
	})
})

var _ = Describe("OutOfRangeError", func() {
	It("message", func() {
		err := OutOfRangeError{Offset: 2, Length: 4, Size: 3}
		Expect(err.Error()).To(Equal("read of 4 bytes at offset 2 is out of range (buffer size 3)"))
	})
})
