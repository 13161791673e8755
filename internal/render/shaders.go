package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: MVP transform plus a fixed-direction lambert term.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uProj;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;
out float vDepth;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
    vec4 viewPos = uView * world;
    vDepth = -viewPos.z;
    gl_Position = uProj * viewPos;
}
` + "\x00"

// Mesh fragment shader: flat color, lambert shading, distance fog toward
// the sky color so streamed-in geometry fades instead of popping.
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uFogColor;
uniform float uFogFar;

in vec3 vNormal;
in float vDepth;
out vec4 FragColor;

void main() {
    vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));
    float lit = 0.45 + 0.55 * max(dot(normalize(vNormal), lightDir), 0.0);
    float fog = clamp(vDepth / uFogFar, 0.0, 1.0);
    vec3 col = mix(uColor * lit, uFogColor, fog * fog);
    FragColor = vec4(col, 1.0);
}
` + "\x00"

// Snow vertex shader: world-space points, size attenuated by distance.
const pointVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;

uniform mat4 uProj;
uniform mat4 uView;

void main() {
    vec4 viewPos = uView * vec4(aPos, 1.0);
    gl_Position = uProj * viewPos;
    gl_PointSize = clamp(140.0 / max(-viewPos.z, 1.0), 1.0, 6.0);
}
` + "\x00"

const pointFragSrc = `#version 410 core

out vec4 FragColor;

void main() {
    vec2 d = gl_PointCoord - vec2(0.5);
    float a = 1.0 - smoothstep(0.3, 0.5, length(d));
    FragColor = vec4(0.92, 0.95, 1.0, a);
}
` + "\x00"

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
