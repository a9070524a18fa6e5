package graphics

// Flat-color shaders: every fragment of a draw gets uVertexColor.
const (
	vertexShaderSource = `#version 410 core
in vec4 aVertexPosition;
uniform vec4 uVertexColor;
uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;
out vec4 vColor;
void main() {
	gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
	vColor = uVertexColor;
}
`

	fragmentShaderSource = `#version 410 core
in vec4 vColor;
out vec4 fragColor;
void main() {
	fragColor = vColor;
}
`
)

// compileProgram compiles both stages and links them. Nothing it created is
// left behind when it fails.
func compileProgram(ctx Context, vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(ctx, StageVertex, vertexSrc)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(ctx, StageFragment, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		return 0, err
	}

	program := ctx.CreateProgram()
	if program == 0 {
		ctx.DeleteShader(vertexShader)
		ctx.DeleteShader(fragmentShader)
		return 0, &ProgramLinkError{Log: "unable to create program object"}
	}
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	// shaders can be deleted after linking
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)

	if !ctx.ProgramLinked(program) {
		log := ctx.ProgramInfoLog(program)
		ctx.DeleteProgram(program)
		if log == "" {
			log = "unknown error creating program object"
		}
		return 0, &ProgramLinkError{Log: log}
	}
	return program, nil
}

func compileShader(ctx Context, stage ShaderStage, source string) (uint32, error) {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0, &ShaderCompileError{Stage: stage, Log: "unable to create shader object"}
	}
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		log := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		if log == "" {
			log = "unknown error creating shader"
		}
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
