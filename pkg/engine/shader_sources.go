package engine

// Shader sources for presenting traced frames

// frameVertexShaderSource passes the fullscreen quad through unchanged
const frameVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

// frameFragmentShaderSource samples the frame texture. Values above 1 are
// clamped by the default framebuffer.
const frameFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D frameTexture;

void main() {
    FragColor = vec4(texture(frameTexture, TexCoord).rgb, 1.0);
}
`
