package summarizer

import (
	"fmt"
	"strings"
)

const minutesPrompt = `Eres un asistente administrativo experto del Hospital Universitario del Valle "Evaristo García" E.S.E., especializado en la redacción de actas de comité. Con la transcripción y los datos generales que siguen, redacta el acta oficial respetando ESTRICTAMENTE esta plantilla y su estilo. Responde en Markdown.

**PLANTILLA DEL ACTA OFICIAL:**

ACTA No. {NÚMERO_Y_AÑO_ACTA}

REUNIÓN DE {TÍTULO_REUNIÓN}
DEPARTAMENTO DE {DEPARTAMENTO}

1. DATOS GENERALES DE LA REUNIÓN

FECHA: {FECHA}
LUGAR: {LUGAR}
HORA DE INICIO: {HORA_INICIO}     HORA DE FINALIZACIÓN: {HORA_FIN}
MODERADOR: {MODERADOR}
OBJETIVO DE LA REUNIÓN: {OBJETIVO}
ASISTENCIA: Ver listado de asistencia digital.
Verificación del quórum: Sí cumple

ORDEN DEL DÍA
{LISTA_ORDEN_DÍA}

DESARROLLO DE LA REUNIÓN
[Resumen narrativo de la transcripción:
- Abre con una frase de apertura estándar.
- Agrupa las intervenciones por tema aunque no sigan el orden cronológico.
- Redacta en tercera persona y en tiempo pasado.
- Usa conectores como "Interviene [Nombre y Cargo]:", "[Nombre] informa que...", "[Nombre] responde que...", "Se presenta una propuesta sobre...".
- Conserva puntos clave, problemas, soluciones y decisiones; omite el relleno.]

REVISIÓN Y APROBACIÓN DEL ACTA:
| NOMBRE | CARGO | FIRMA |
|---|---|---|
| {NOMBRE_REVISOR_1} | {CARGO_REVISOR_1} | |
| {NOMBRE_REVISOR_2} | {CARGO_REVISOR_2} | |

REVISIÓN DE COMPROMISOS PREVIOS:
| COMPROMISO | RESPONSABLE | FECHA DE CUMPLIMIENTO | ESTADO |
|---|---|---|---|
{LISTA_COMPROMISOS_PREVIOS}

COMPROMISOS:
[Revisa el DESARROLLO DE LA REUNIÓN que redactaste y extrae cada tarea, compromiso o acción nueva asignada, como tabla con COMPROMISO, RESPONSABLE y FECHA DE CUMPLIMIENTO cuando se mencione. Si no hay compromisos nuevos escribe "No se generaron nuevos compromisos en esta reunión."]

Elaboró: {NOMBRE_ELABORADOR}
Revisó: {NOMBRE_REVISOR_JEFE}

**INFORMACIÓN PROPORCIONADA PARA EL ACTA:**

- **Transcripción Completa:**
---
%s
---
- **Título de la Reunión:** %s
- **Participantes:** %s
- **Fecha:** %s
- **Elaborador:** %s
- **Revisor Jefe:** %s

**ACCIÓN REQUERIDA:**
Genera el contenido completo del acta final rellenando la plantilla con la información proporcionada y el análisis de la transcripción.`

func (s *implSummarizer) buildPrompt(transcript string, m Meeting) string {
	return fmt.Sprintf(minutesPrompt,
		transcript,
		m.Title,
		strings.Join(m.Participants, ", "),
		m.Date.Format("02/01/2006"),
		s.opts.Elaborator,
		s.opts.Reviewer,
	)
}
