package gvas

// DecodeHeader consumes the fixed-layout GVAS prologue (§3): the file type
// tag, the two version integers, the engine version stamp, the custom
// version table, and the save game class name. header.ParsedLength records
// how many bytes were consumed; the body decoder starts from that offset.
func DecodeHeader(cur *Cursor) (*GvasHeader, error) {
	h := &GvasHeader{}

	var err error
	if h.FileTypeTag, err = cur.ReadI32(); err != nil {
		return nil, err
	}
	if h.SaveGameFileVersion, err = cur.ReadI32(); err != nil {
		return nil, err
	}
	if h.PackageFileUE4Version, err = cur.ReadI32(); err != nil {
		return nil, err
	}
	if h.EngineVersion, err = decodeEngineVersion(cur); err != nil {
		return nil, err
	}
	if h.CustomVersionFormat, err = cur.ReadI32(); err != nil {
		return nil, err
	}

	count, err := cur.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, dataErrorAt(cur.Position(), "negative custom version count %d", count)
	}
	h.CustomVersions = make([]FCustomVersion, count)
	for i := range h.CustomVersions {
		if h.CustomVersions[i], err = decodeCustomVersion(cur); err != nil {
			return nil, err
		}
	}

	if h.SaveGameClassName, err = cur.ReadString(); err != nil {
		return nil, err
	}

	h.ParsedLength = cur.Position()
	return h, nil
}

func decodeEngineVersion(cur *Cursor) (FEngineVersion, error) {
	var v FEngineVersion
	var err error
	if v.Major, err = cur.ReadU16(); err != nil {
		return v, err
	}
	if v.Minor, err = cur.ReadU16(); err != nil {
		return v, err
	}
	if v.Patch, err = cur.ReadU16(); err != nil {
		return v, err
	}
	if v.ChangeList, err = cur.ReadU32(); err != nil {
		return v, err
	}
	if v.Branch, err = cur.ReadString(); err != nil {
		return v, err
	}
	return v, nil
}

func decodeGuid(cur *Cursor) (FGuid, error) {
	var g FGuid
	var err error
	if g.A, err = cur.ReadU32(); err != nil {
		return g, err
	}
	if g.B, err = cur.ReadU32(); err != nil {
		return g, err
	}
	if g.C, err = cur.ReadU32(); err != nil {
		return g, err
	}
	if g.D, err = cur.ReadU32(); err != nil {
		return g, err
	}
	return g, nil
}

func decodeCustomVersion(cur *Cursor) (FCustomVersion, error) {
	var v FCustomVersion
	var err error
	if v.Key, err = decodeGuid(cur); err != nil {
		return v, err
	}
	if v.Version, err = cur.ReadI32(); err != nil {
		return v, err
	}
	return v, nil
}

// EncodeHeader is the symmetric writer for GvasHeader (§4.4): sufficient to
// round-trip the prologue. Sequences of known length (the custom version
// table) write an i32 count followed by their elements; UEString encoding
// writes i32 length = utf8 byte count + 1, the bytes, then a NUL.
func EncodeHeader(h *GvasHeader) ([]byte, error) {
	var buf []byte

	buf = appendI32(buf, h.FileTypeTag)
	buf = appendI32(buf, h.SaveGameFileVersion)
	buf = appendI32(buf, h.PackageFileUE4Version)

	var err error
	if buf, err = appendEngineVersion(buf, h.EngineVersion); err != nil {
		return nil, err
	}
	buf = appendI32(buf, h.CustomVersionFormat)

	if h.CustomVersions == nil {
		return nil, dataErrorAt(-1, "length must be known upfront")
	}
	buf = appendI32(buf, int32(len(h.CustomVersions)))
	for _, cv := range h.CustomVersions {
		buf = appendGuid(buf, cv.Key)
		buf = appendI32(buf, cv.Version)
	}

	if buf, err = appendString(buf, h.SaveGameClassName); err != nil {
		return nil, err
	}

	return buf, nil
}

func appendEngineVersion(buf []byte, v FEngineVersion) ([]byte, error) {
	buf = appendU16(buf, v.Major)
	buf = appendU16(buf, v.Minor)
	buf = appendU16(buf, v.Patch)
	buf = appendU32(buf, v.ChangeList)
	return appendString(buf, v.Branch)
}

func appendGuid(buf []byte, g FGuid) []byte {
	buf = appendU32(buf, g.A)
	buf = appendU32(buf, g.B)
	buf = appendU32(buf, g.C)
	buf = appendU32(buf, g.D)
	return buf
}
