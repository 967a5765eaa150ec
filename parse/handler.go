package parse

import "github.com/theJ8910/jnbt/format"

// BaseHandler is a Handler whose callbacks all succeed and do nothing.
// Embed it to implement only the events of interest.
type BaseHandler struct{}

var _ Handler = BaseHandler{}

func (BaseHandler) Name(format.TagType, string) error { return nil }
func (BaseHandler) Start() error                      { return nil }
func (BaseHandler) End() error                        { return nil }

func (BaseHandler) Byte(int8) error      { return nil }
func (BaseHandler) Short(int16) error    { return nil }
func (BaseHandler) Int(int32) error      { return nil }
func (BaseHandler) Long(int64) error     { return nil }
func (BaseHandler) Float(float32) error  { return nil }
func (BaseHandler) Double(float64) error { return nil }
func (BaseHandler) String(string) error  { return nil }

func (BaseHandler) StartByteArray(int32) error { return nil }
func (BaseHandler) Bytes([]byte) error         { return nil }
func (BaseHandler) EndByteArray() error        { return nil }

func (BaseHandler) StartIntArray(int32) error { return nil }
func (BaseHandler) Ints([]int32) error        { return nil }
func (BaseHandler) EndIntArray() error        { return nil }

func (BaseHandler) StartList(format.TagType, int32) error { return nil }
func (BaseHandler) EndList() error                        { return nil }

func (BaseHandler) StartCompound() error { return nil }
func (BaseHandler) EndCompound() error   { return nil }
