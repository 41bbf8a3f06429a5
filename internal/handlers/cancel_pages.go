package handlers

const cancelPageSuccess = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Reserva cancelada</title>
  <style>
    body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
    .card { max-width: 420px; margin: 80px auto; background: #fff; border-radius: 8px;
            padding: 32px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,.1); }
    h1 { font-size: 22px; color: #1a7f37; }
    p { color: #444; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Reserva cancelada</h1>
    <p>Tu reserva fue cancelada correctamente. Si quieres otra hora, puedes agendar de nuevo cuando quieras.</p>
  </div>
</body>
</html>`

const cancelPageExpired = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Enlace expirado</title>
  <style>
    body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
    .card { max-width: 420px; margin: 80px auto; background: #fff; border-radius: 8px;
            padding: 32px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,.1); }
    h1 { font-size: 22px; color: #b45309; }
    p { color: #444; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Enlace expirado</h1>
    <p>Este enlace de cancelación ya expiró. Contacta directamente a tu barbería para cancelar la reserva.</p>
  </div>
</body>
</html>`

const cancelPageInvalid = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Enlace inválido</title>
  <style>
    body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
    .card { max-width: 420px; margin: 80px auto; background: #fff; border-radius: 8px;
            padding: 32px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,.1); }
    h1 { font-size: 22px; color: #b91c1c; }
    p { color: #444; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Enlace inválido</h1>
    <p>Este enlace de cancelación no es válido. Revisa el correo de confirmación o contacta a tu barbería.</p>
  </div>
</body>
</html>`

const cancelPageError = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Error</title>
  <style>
    body { font-family: sans-serif; background: #f4f4f4; margin: 0; }
    .card { max-width: 420px; margin: 80px auto; background: #fff; border-radius: 8px;
            padding: 32px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,.1); }
    h1 { font-size: 22px; color: #b91c1c; }
    p { color: #444; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Algo salió mal</h1>
    <p>No pudimos procesar la cancelación. Intenta de nuevo en unos minutos.</p>
  </div>
</body>
</html>`
