package gl

// OpenGL ES 3.0 constants issued by the safety layer. Values are the
// standard GLenum constants from the Khronos registry.
const (
	FALSE = 0
	TRUE  = 1

	// Buffer targets.
	ARRAY_BUFFER              = 0x8892
	ELEMENT_ARRAY_BUFFER      = 0x8893
	COPY_READ_BUFFER          = 0x8F36
	COPY_WRITE_BUFFER         = 0x8F37
	PIXEL_PACK_BUFFER         = 0x88EB
	PIXEL_UNPACK_BUFFER       = 0x88EC
	TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	UNIFORM_BUFFER            = 0x8A11

	// Buffer usage.
	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	// Buffer parameters.
	BUFFER_SIZE  = 0x8764
	BUFFER_USAGE = 0x8765

	// Texture targets and units.
	TEXTURE_2D       = 0x0DE1
	TEXTURE_3D       = 0x806F
	TEXTURE_2D_ARRAY = 0x8C1A
	TEXTURE_CUBE_MAP = 0x8513
	TEXTURE0         = 0x84C0

	// Cube map faces, in layer order.
	TEXTURE_CUBE_MAP_POSITIVE_X = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z = 0x851A

	// Texture parameters.
	TEXTURE_MAG_FILTER         = 0x2800
	TEXTURE_MIN_FILTER         = 0x2801
	TEXTURE_WRAP_S             = 0x2802
	TEXTURE_WRAP_T             = 0x2803
	TEXTURE_WRAP_R             = 0x8072
	TEXTURE_MIN_LOD            = 0x813A
	TEXTURE_MAX_LOD            = 0x813B
	TEXTURE_BASE_LEVEL         = 0x813C
	TEXTURE_MAX_LEVEL          = 0x813D
	TEXTURE_COMPARE_MODE       = 0x884C
	TEXTURE_COMPARE_FUNC       = 0x884D
	COMPARE_REF_TO_TEXTURE     = 0x884E
	TEXTURE_SWIZZLE_R          = 0x8E42
	TEXTURE_SWIZZLE_G          = 0x8E43
	TEXTURE_SWIZZLE_B          = 0x8E44
	TEXTURE_SWIZZLE_A          = 0x8E45
	DEPTH_STENCIL_TEXTURE_MODE = 0x90EA

	// Filters.
	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703

	// Wrap modes.
	REPEAT          = 0x2901
	CLAMP_TO_EDGE   = 0x812F
	MIRRORED_REPEAT = 0x8370

	// Component and swizzle sources.
	ZERO  = 0
	ONE   = 1
	RED   = 0x1903
	GREEN = 0x1904
	BLUE  = 0x1905
	ALPHA = 0x1906

	// Pixel formats.
	DEPTH_COMPONENT = 0x1902
	STENCIL_INDEX   = 0x1901
	RGB             = 0x1907
	RGBA            = 0x1908
	LUMINANCE       = 0x1909
	DEPTH_STENCIL   = 0x84F9

	// Sized internal formats.
	R8                 = 0x8229
	RG8                = 0x822B
	RGB8               = 0x8051
	RGBA8              = 0x8058
	SRGB8_ALPHA8       = 0x8C43
	RGBA16F            = 0x881A
	RGBA32F            = 0x8814
	RGB565             = 0x8D62
	DEPTH_COMPONENT16  = 0x81A5
	DEPTH_COMPONENT24  = 0x81A6
	DEPTH_COMPONENT32F = 0x8CAC
	DEPTH24_STENCIL8   = 0x88F0
	DEPTH32F_STENCIL8  = 0x8CAD
	STENCIL_INDEX8     = 0x8D48

	// Pixel types.
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	HALF_FLOAT     = 0x140B

	// Framebuffer and renderbuffer targets.
	READ_FRAMEBUFFER = 0x8CA8
	DRAW_FRAMEBUFFER = 0x8CA9
	FRAMEBUFFER      = 0x8D40
	RENDERBUFFER     = 0x8D41

	// Attachment points.
	COLOR_ATTACHMENT0        = 0x8CE0
	COLOR_ATTACHMENT1        = 0x8CE1
	COLOR_ATTACHMENT2        = 0x8CE2
	COLOR_ATTACHMENT3        = 0x8CE3
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	DEPTH_STENCIL_ATTACHMENT = 0x821A

	// Completeness statuses.
	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = 0x8DA8

	// Read/draw buffer selectors.
	NONE = 0
	BACK = 0x0405

	// Clear masks.
	DEPTH_BUFFER_BIT   = 0x0100
	STENCIL_BUFFER_BIT = 0x0400
	COLOR_BUFFER_BIT   = 0x4000

	// Shader types and query names.
	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	// Primitive topologies.
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	// Capabilities.
	CULL_FACE                     = 0x0B44
	DEPTH_TEST                    = 0x0B71
	STENCIL_TEST                  = 0x0B90
	DITHER                        = 0x0BD0
	BLEND                         = 0x0BE2
	SCISSOR_TEST                  = 0x0C11
	POLYGON_OFFSET_FILL           = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE      = 0x809E
	SAMPLE_COVERAGE               = 0x80A0
	RASTERIZER_DISCARD            = 0x8C89
	PRIMITIVE_RESTART_FIXED_INDEX = 0x8D69

	// Comparison functions.
	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	// Blend equations.
	FUNC_ADD              = 0x8006
	MIN                   = 0x8007
	MAX                   = 0x8008
	FUNC_SUBTRACT         = 0x800A
	FUNC_REVERSE_SUBTRACT = 0x800B

	// Blend factors.
	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308
	CONSTANT_COLOR           = 0x8001
	ONE_MINUS_CONSTANT_COLOR = 0x8002
	CONSTANT_ALPHA           = 0x8003
	ONE_MINUS_CONSTANT_ALPHA = 0x8004

	// Face culling and winding.
	FRONT          = 0x0404
	FRONT_AND_BACK = 0x0408
	CW             = 0x0900
	CCW            = 0x0901

	// Stencil operations.
	INVERT    = 0x150A
	KEEP      = 0x1E00
	REPLACE   = 0x1E01
	INCR      = 0x1E02
	DECR      = 0x1E03
	INCR_WRAP = 0x8507
	DECR_WRAP = 0x8508
)
