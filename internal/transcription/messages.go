package transcription

const (
	msgMonitorCancelled = "Proceso cancelado por pérdida de conexión (detectado por monitor)."
	msgAborted          = "Proceso cancelado. El progreso ha sido guardado."
	msgConnectionLost   = "Se perdió la conexión a internet durante la transcripción."
	msgTimeout          = "La transcripción tardó demasiado (timeout); posible pérdida de conexión."
	msgAudioRead        = "Error crítico al leer el archivo de audio para el diálogo %d: %v"
	msgLoad             = "No se pudo cargar el proyecto: %v"
	msgCheckpoint       = "No se pudo guardar el progreso del proyecto: %v"
	msgLiteral          = "Error al guardar el acta literal: %v"
	msgProcessing       = "Procesando diálogo %d/%d (%s)..."
	msgCompleted        = "¡Acta literal completada!"
	msgSaved            = "Acta y audios guardados en la carpeta: %s"
)
