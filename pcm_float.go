package riffwave

import (
	"fmt"
	"math"
)

const (
	scalePCMInt16   = 32767.0
	scalePCMInt24   = 8388608.0
	scalePCMInt32   = 2147483648.0
	floatPCM8Center = 127.5
	minPCMInt8      = -128
	maxPCMInt8      = 127
	minPCMInt16     = -32768
	maxPCMInt16     = 32767
	minPCMInt24     = -8388608
	maxPCMInt24     = 8388607
	minPCMInt32     = -2147483648
	maxPCMInt32     = 2147483647
)

// pcm8Table maps unsigned 8-bit samples to floats, (2b-255)/255.
var pcm8Table = [256]float32{
	-1, -0.992156863, -0.984313726, -0.97647059, -0.968627453, -0.960784316, -0.952941179, -0.945098042,
	-0.937254906, -0.929411769, -0.921568632, -0.913725495, -0.905882359, -0.898039222, -0.890196085, -0.882352948,
	-0.874509811, -0.866666675, -0.858823538, -0.850980401, -0.843137264, -0.835294127, -0.827450991, -0.819607854,
	-0.811764717, -0.80392158, -0.796078444, -0.788235307, -0.78039217, -0.772549033, -0.764705896, -0.75686276,
	-0.749019623, -0.741176486, -0.733333349, -0.725490212, -0.717647076, -0.709803939, -0.701960802, -0.694117665,
	-0.686274529, -0.678431392, -0.670588255, -0.662745118, -0.654901981, -0.647058845, -0.639215708, -0.631372571,
	-0.623529434, -0.615686297, -0.607843161, -0.600000024, -0.592156887, -0.58431375, -0.576470613, -0.568627477,
	-0.56078434, -0.552941203, -0.545098066, -0.53725493, -0.529411793, -0.521568656, -0.513725519, -0.505882382,
	-0.498039216, -0.490196079, -0.482352942, -0.474509805, -0.466666669, -0.458823532, -0.450980395, -0.443137258,
	-0.435294122, -0.427450985, -0.419607848, -0.411764711, -0.403921574, -0.396078438, -0.388235301, -0.380392164,
	-0.372549027, -0.36470589, -0.356862754, -0.349019617, -0.34117648, -0.333333343, -0.325490206, -0.31764707,
	-0.309803933, -0.301960796, -0.294117659, -0.286274523, -0.278431386, -0.270588249, -0.262745112, -0.254901975,
	-0.247058824, -0.239215687, -0.23137255, -0.223529413, -0.215686277, -0.20784314, -0.200000003, -0.192156866,
	-0.184313729, -0.176470593, -0.168627456, -0.160784319, -0.152941182, -0.145098045, -0.137254909, -0.129411772,
	-0.121568628, -0.113725491, -0.105882354, -0.0980392173, -0.0901960805, -0.0823529437, -0.0745098069, -0.0666666701,
	-0.0588235296, -0.0509803928, -0.0431372561, -0.0352941193, -0.0274509806, -0.0196078438, -0.0117647061, -0.00392156886,
	0.00392156886, 0.0117647061, 0.0196078438, 0.0274509806, 0.0352941193, 0.0431372561, 0.0509803928, 0.0588235296,
	0.0666666701, 0.0745098069, 0.0823529437, 0.0901960805, 0.0980392173, 0.105882354, 0.113725491, 0.121568628,
	0.129411772, 0.137254909, 0.145098045, 0.152941182, 0.160784319, 0.168627456, 0.176470593, 0.184313729,
	0.192156866, 0.200000003, 0.20784314, 0.215686277, 0.223529413, 0.23137255, 0.239215687, 0.247058824,
	0.254901975, 0.262745112, 0.270588249, 0.278431386, 0.286274523, 0.294117659, 0.301960796, 0.309803933,
	0.31764707, 0.325490206, 0.333333343, 0.34117648, 0.349019617, 0.356862754, 0.36470589, 0.372549027,
	0.380392164, 0.388235301, 0.396078438, 0.403921574, 0.411764711, 0.419607848, 0.427450985, 0.435294122,
	0.443137258, 0.450980395, 0.458823532, 0.466666669, 0.474509805, 0.482352942, 0.490196079, 0.498039216,
	0.505882382, 0.513725519, 0.521568656, 0.529411793, 0.53725493, 0.545098066, 0.552941203, 0.56078434,
	0.568627477, 0.576470613, 0.58431375, 0.592156887, 0.600000024, 0.607843161, 0.615686297, 0.623529434,
	0.631372571, 0.639215708, 0.647058845, 0.654901981, 0.662745118, 0.670588255, 0.678431392, 0.686274529,
	0.694117665, 0.701960802, 0.709803939, 0.717647076, 0.725490212, 0.733333349, 0.741176486, 0.749019623,
	0.75686276, 0.764705896, 0.772549033, 0.78039217, 0.788235307, 0.796078444, 0.80392158, 0.811764717,
	0.819607854, 0.827450991, 0.835294127, 0.843137264, 0.850980401, 0.858823538, 0.866666675, 0.874509811,
	0.882352948, 0.890196085, 0.898039222, 0.905882359, 0.913725495, 0.921568632, 0.929411769, 0.937254906,
	0.945098042, 0.952941179, 0.960784316, 0.968627453, 0.97647059, 0.984313726, 0.992156863, 1,
}

func decodeUint8(b byte) float32 {
	return pcm8Table[b]
}

// decodeInt16 scales by 32767, so -32768 lands slightly below -1.
func decodeInt16(b []byte) float32 {
	return float32(int16(uint16(b[0])|uint16(b[1])<<8)) / scalePCMInt16
}

// decodePacked24 places the three bytes at bits 8-31 and scales by 2^31.
func decodePacked24(b []byte) float32 {
	v := int32(uint32(b[0])<<8 | uint32(b[1])<<16 | uint32(b[2])<<24)

	return float32(v) / scalePCMInt32
}

func decodePacked32(b []byte) float32 {
	v := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)

	return float32(v) / scalePCMInt32
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

// sampleQuantizeFunc returns the inverse of the decode functions above for
// integer depths. 8-bit results are signed.
func sampleQuantizeFunc(bitDepth int) (func(float32) int, error) {
	switch bitDepth {
	case 8:
		return quantizeInt8, nil
	case 16:
		return quantizeInt16, nil
	case 24:
		return quantizeInt24, nil
	case 32:
		return quantizeInt32, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

func quantizeInt8(value float32) int {
	return clampInt(int(math.Round((float64(value)+1)*floatPCM8Center))-128, minPCMInt8, maxPCMInt8)
}

func quantizeInt16(value float32) int {
	return clampInt(int(math.Round(float64(value)*scalePCMInt16)), minPCMInt16, maxPCMInt16)
}

func quantizeInt24(value float32) int {
	return clampInt(int(math.Round(float64(value)*scalePCMInt24)), minPCMInt24, maxPCMInt24)
}

func quantizeInt32(value float32) int {
	return clampInt(int(math.Round(float64(value)*scalePCMInt32)), minPCMInt32, maxPCMInt32)
}

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}
